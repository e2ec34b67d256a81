package repository

import (
	"testing"

	"blogify/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database migrated with the full schema.
// A single connection keeps the :memory: database alive across queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
	)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID string) *models.Post {
	t.Helper()
	post := &models.Post{
		AuthorID: authorID,
		Title:    "First post",
		Content:  "Hello world",
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func countReactions(t *testing.T, db *gorm.DB, userID string, postID int64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Reaction{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error)
	return count
}

func TestReactionRepository_ToggleAdd(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	result, err := repo.Toggle(user.ID, post.ID, models.ReactionLike)
	require.NoError(t, err)

	assert.Equal(t, ToggleAdded, result.Action)
	require.NotNil(t, result.Reaction)
	assert.Equal(t, models.ReactionLike, result.Reaction.Kind)
	assert.EqualValues(t, 1, countReactions(t, db, user.ID, post.ID))
}

func TestReactionRepository_ToggleSameKindRemoves(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	_, err := repo.Toggle(user.ID, post.ID, models.ReactionLike)
	require.NoError(t, err)

	result, err := repo.Toggle(user.ID, post.ID, models.ReactionLike)
	require.NoError(t, err)

	assert.Equal(t, ToggleRemoved, result.Action)
	assert.Equal(t, models.ReactionLike, result.OldKind)
	assert.Nil(t, result.Reaction)
	assert.EqualValues(t, 0, countReactions(t, db, user.ID, post.ID))
}

func TestReactionRepository_ToggleDifferentKindReplaces(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	_, err := repo.Toggle(user.ID, post.ID, models.ReactionLike)
	require.NoError(t, err)

	result, err := repo.Toggle(user.ID, post.ID, models.ReactionLove)
	require.NoError(t, err)

	assert.Equal(t, ToggleReplaced, result.Action)
	assert.Equal(t, models.ReactionLike, result.OldKind)
	require.NotNil(t, result.Reaction)
	assert.Equal(t, models.ReactionLove, result.Reaction.Kind)

	// replacement keeps the single-row invariant
	assert.EqualValues(t, 1, countReactions(t, db, user.ID, post.ID))

	stored, err := repo.GetByUserAndPost(user.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReactionLove, stored.Kind)
}

func TestReactionRepository_UniqueIndexBackstop(t *testing.T) {
	db := setupTestDB(t)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	first := models.Reaction{UserID: user.ID, PostID: post.ID, Kind: models.ReactionLike}
	require.NoError(t, db.Create(&first).Error)

	// a second row for the same (user, post) must fail regardless of kind
	second := models.Reaction{UserID: user.ID, PostID: post.ID, Kind: models.ReactionLove}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestReactionRepository_GetSummaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	post := seedPost(t, db, alice.ID)

	_, err := repo.Toggle(alice.ID, post.ID, models.ReactionLike)
	require.NoError(t, err)
	_, err = repo.Toggle(bob.ID, post.ID, models.ReactionLike)
	require.NoError(t, err)
	_, err = repo.Toggle(carol.ID, post.ID, models.ReactionHelpful)
	require.NoError(t, err)

	summaries, err := repo.GetSummaries(post.ID)
	require.NoError(t, err)

	// only kinds with at least one reactor appear
	require.Len(t, summaries, 2)

	byKind := make(map[models.ReactionKind]models.ReactionSummary, len(summaries))
	for _, s := range summaries {
		byKind[s.Kind] = s
	}

	require.Contains(t, byKind, models.ReactionLike)
	assert.Equal(t, 2, byKind[models.ReactionLike].Count)
	assert.ElementsMatch(t, []string{"alice", "bob"}, byKind[models.ReactionLike].Users)

	require.Contains(t, byKind, models.ReactionHelpful)
	assert.Equal(t, 1, byKind[models.ReactionHelpful].Count)
	assert.Equal(t, []string{"carol"}, byKind[models.ReactionHelpful].Users)
}

func TestReactionRepository_GetSummariesEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	summaries, err := repo.GetSummaries(post.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestReactionRepository_CountByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID)

	_, err := repo.Toggle(alice.ID, post.ID, models.ReactionLike)
	require.NoError(t, err)
	_, err = repo.Toggle(bob.ID, post.ID, models.ReactionLove)
	require.NoError(t, err)

	count, err := repo.CountByPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
