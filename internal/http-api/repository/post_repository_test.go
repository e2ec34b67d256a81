package repository

import (
	"errors"
	"fmt"
	"testing"

	"blogify/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_GetAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	user := seedUser(t, db, "alice")
	for i := 1; i <= 3; i++ {
		post := &models.Post{
			AuthorID: user.ID,
			Title:    fmt.Sprintf("post %d", i),
			Content:  "content",
		}
		require.NoError(t, repo.Create(post))
	}

	posts, total, err := repo.GetAll(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, posts, 3)
	assert.Equal(t, "post 3", posts[0].Title)
	assert.Equal(t, "post 1", posts[2].Title)
}

func TestPostRepository_UpdateOwnership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	alice := seedUser(t, db, "alice")
	mallory := seedUser(t, db, "mallory")
	post := seedPost(t, db, alice.ID)

	post.Title = "edited"
	err := repo.Update(post, mallory.ID)
	assert.True(t, errors.Is(err, ErrNotOwner))

	loaded, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "First post", loaded.Title)

	require.NoError(t, repo.Update(post, alice.ID))
	loaded, err = repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", loaded.Title)
}

func TestPostRepository_DeleteOwnership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	alice := seedUser(t, db, "alice")
	mallory := seedUser(t, db, "mallory")
	post := seedPost(t, db, alice.ID)

	err := repo.Delete(post.ID, mallory.ID)
	assert.True(t, errors.Is(err, ErrNotOwner))

	err = repo.Delete(9999, alice.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repo.Delete(post.ID, alice.ID))

	exists, err := repo.Exists(post.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
