package repository

import (
	"errors"
	"testing"

	"blogify/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedComment(t *testing.T, db *gorm.DB, authorID string, postID int64, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		AuthorID: authorID,
		PostID:   postID,
		Content:  content,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func TestCommentRepository_CreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	comment := &models.Comment{
		AuthorID: user.ID,
		PostID:   post.ID,
		Content:  "nice post",
	}
	require.NoError(t, repo.Create(comment))
	require.NotZero(t, comment.ID)

	loaded, err := repo.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "nice post", loaded.Content)
	assert.Equal(t, "alice", loaded.Author.Username)
}

func TestCommentRepository_GetByPostOrdersOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	seedComment(t, db, user.ID, post.ID, "first")
	seedComment(t, db, user.ID, post.ID, "second")
	seedComment(t, db, user.ID, post.ID, "third")

	comments, err := repo.GetByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "third", comments[2].Content)
}

func TestCommentRepository_DeleteByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)
	comment := seedComment(t, db, user.ID, post.ID, "delete me")

	require.NoError(t, repo.Delete(comment.ID, user.ID))

	_, err := repo.GetByID(comment.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCommentRepository_DeleteByNonAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	alice := seedUser(t, db, "alice")
	mallory := seedUser(t, db, "mallory")
	post := seedPost(t, db, alice.ID)
	comment := seedComment(t, db, alice.ID, post.ID, "mine")

	err := repo.Delete(comment.ID, mallory.ID)
	assert.True(t, errors.Is(err, ErrNotOwner))

	// the row survives a rejected delete
	loaded, loadErr := repo.GetByID(comment.ID)
	require.NoError(t, loadErr)
	assert.Equal(t, "mine", loaded.Content)
}

func TestCommentRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	user := seedUser(t, db, "alice")

	err := repo.Delete(9999, user.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
