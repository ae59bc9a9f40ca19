package store

import (
	"errors"
	"time"

	"github.com/recetario-dev/recetario/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SetReaction is the single entry point for vote changes. value is -1, 0 or
// +1; anything else is a caller error. Zero deletes the row (clearing a
// vote that does not exist is a no-op), otherwise the row is upserted on
// the (comment, user) key with last-write-wins on value and timestamp. The
// upsert is one atomic statement, so a user can never hold two votes on the
// same comment.
func (s *Store) SetReaction(userID, commentID string, value int) error {
	switch value {
	case -1, 0, 1:
	default:
		return ErrInvalidReaction
	}

	if value == 0 {
		return s.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&models.CommentReaction{}).Error
	}

	reaction := models.CommentReaction{
		CommentID: commentID,
		UserID:    userID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "comment_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "created_at"}),
	}).Create(&reaction).Error
}

// ReactionSummary computes the comment's like and dislike counts plus the
// viewer's own vote, always fresh from the relation. viewerID may be empty;
// myVote is nil then and for viewers who have not voted.
func (s *Store) ReactionSummary(commentID, viewerID string) (likes, dislikes int, myVote *int, err error) {
	var likeCount, dislikeCount int64

	err = s.db.Model(&models.CommentReaction{}).
		Where("comment_id = ? AND value = 1", commentID).
		Count(&likeCount).Error
	if err != nil {
		return 0, 0, nil, err
	}

	err = s.db.Model(&models.CommentReaction{}).
		Where("comment_id = ? AND value = -1", commentID).
		Count(&dislikeCount).Error
	if err != nil {
		return 0, 0, nil, err
	}

	if viewerID != "" {
		var reaction models.CommentReaction
		err = s.db.Where("comment_id = ? AND user_id = ?", commentID, viewerID).
			First(&reaction).Error
		if err == nil {
			myVote = &reaction.Value
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, nil, err
		}
	}

	return int(likeCount), int(dislikeCount), myVote, nil
}
