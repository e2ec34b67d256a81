package models

import "time"

// ReactionKind is the closed set of sentiments a user can attach to a post.
// A user holds at most one reaction per post at a time.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionLove    ReactionKind = "love"
	ReactionHelpful ReactionKind = "helpful"
)

// ReactionKinds returns the recognized kinds in display order.
func ReactionKinds() []ReactionKind {
	return []ReactionKind{ReactionLike, ReactionLove, ReactionHelpful}
}

// Valid reports whether k is a member of the recognized kind set.
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionLike, ReactionLove, ReactionHelpful:
		return true
	}
	return false
}

type Reaction struct {
	ID        int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	PostID    int64        `json:"post_id" gorm:"not null;uniqueIndex:idx_reactions_post_user,priority:1"`
	UserID    string       `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reactions_post_user,priority:2"`
	Kind      ReactionKind `json:"kind" gorm:"size:20;not null"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Post Post `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
}

func (Reaction) TableName() string {
	return "reactions"
}

// ReactionSummary is the per-kind aggregate for one post. It is derived from
// reaction rows joined to users and never persisted.
type ReactionSummary struct {
	Kind  ReactionKind `json:"kind"`
	Count int          `json:"count"`
	Users []string     `json:"users"`
}
