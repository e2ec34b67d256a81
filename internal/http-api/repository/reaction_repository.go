package repository

import (
	"errors"

	"blogify/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ToggleAction names the transition a Toggle call committed.
type ToggleAction string

const (
	ToggleAdded    ToggleAction = "added"
	ToggleRemoved  ToggleAction = "removed"
	ToggleReplaced ToggleAction = "replaced"
)

// ToggleResult reports what a Toggle committed. Reaction is nil when the
// action was a removal. OldKind is set only for replacements.
type ToggleResult struct {
	Action   ToggleAction
	OldKind  models.ReactionKind
	Reaction *models.Reaction
}

type ReactionRepository interface {
	// Toggle runs the reaction state machine for one (user, post) pair as a
	// single transaction: absent -> insert, same kind -> delete, different
	// kind -> update. A lost insert race surfaces as gorm.ErrDuplicatedKey
	// for the caller to retry.
	Toggle(userID string, postID int64, kind models.ReactionKind) (*ToggleResult, error)
	GetByUserAndPost(userID string, postID int64) (*models.Reaction, error)
	GetSummaries(postID int64) ([]models.ReactionSummary, error)
	CountByPost(postID int64) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Toggle(userID string, postID int64, kind models.ReactionKind) (*ToggleResult, error) {
	var result ToggleResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			reaction := &models.Reaction{
				UserID: userID,
				PostID: postID,
				Kind:   kind,
			}
			// The (post_id, user_id) unique index is the backstop: if a
			// concurrent toggle got here first, this insert fails and the
			// whole read-modify-write is retried by the service.
			if err := tx.Create(reaction).Error; err != nil {
				return err
			}
			result = ToggleResult{Action: ToggleAdded, Reaction: reaction}
			return nil

		case err != nil:
			return err

		case existing.Kind == kind:
			// re-selecting the current kind un-reacts
			if err := tx.Delete(&models.Reaction{}, "id = ?", existing.ID).Error; err != nil {
				return err
			}
			result = ToggleResult{Action: ToggleRemoved, OldKind: existing.Kind}
			return nil

		default:
			oldKind := existing.Kind
			existing.Kind = kind
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			result = ToggleResult{Action: ToggleReplaced, OldKind: oldKind, Reaction: &existing}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reactionRepository) GetByUserAndPost(userID string, postID int64) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// GetSummaries aggregates reaction rows joined to users into per-kind
// summaries. The fold happens in Go so the query stays portable between
// postgres and the sqlite test driver.
func (r *reactionRepository) GetSummaries(postID int64) ([]models.ReactionSummary, error) {
	var rows []struct {
		Kind     models.ReactionKind
		Username string
	}

	err := r.db.Model(&models.Reaction{}).
		Select("reactions.kind, users.username").
		Joins("JOIN users ON users.id = reactions.user_id").
		Where("reactions.post_id = ?", postID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byKind := make(map[models.ReactionKind][]string)
	for _, row := range rows {
		byKind[row.Kind] = append(byKind[row.Kind], row.Username)
	}

	summaries := make([]models.ReactionSummary, 0, len(byKind))
	for _, kind := range models.ReactionKinds() {
		users, ok := byKind[kind]
		if !ok {
			continue
		}
		summaries = append(summaries, models.ReactionSummary{
			Kind:  kind,
			Count: len(users),
			Users: users,
		})
	}
	return summaries, nil
}

func (r *reactionRepository) CountByPost(postID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reaction{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// IsDuplicateKey reports whether err is a unique-constraint violation. GORM
// translates these to ErrDuplicatedKey; the raw pgx error code is checked as
// well in case translation is disabled on the connection.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
