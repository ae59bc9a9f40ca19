package models

import "time"

type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	RecipeID  string    `gorm:"not null;index:idx_comments_recipe" json:"recipeId"`
	UserID    string    `gorm:"not null" json:"userId"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `gorm:"index:idx_comments_recipe" json:"createdAt"`

	// Relationships
	Reactions []CommentReaction `gorm:"foreignKey:CommentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// CommentReaction holds a single vote per (comment, user). Value is -1 or
// +1; a cleared vote deletes the row, zero is never stored.
type CommentReaction struct {
	CommentID string    `gorm:"primaryKey" json:"commentId"`
	UserID    string    `gorm:"primaryKey" json:"userId"`
	Value     int       `gorm:"not null;check:value IN (-1, 1)" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentView is a comment row annotated for display: author fields joined
// from users, reaction counts and the viewer's own vote derived fresh from
// comment_reactions on every listing.
type CommentView struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipeId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	MyVote    *int      `json:"myVote"`
}
