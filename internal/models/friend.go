package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

// FriendRequest is unique per ordered (from, to) pair; the only mutation is the
// pending -> accepted/rejected transition.
type FriendRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FromUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friend_requests_pair"`
	ToUserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friend_requests_pair"`
	Status      string    `gorm:"default:'pending'"`
	CreatedAt   time.Time
	RespondedAt *time.Time

	FromUser Profile `gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE"`
	ToUser   Profile `gorm:"foreignKey:ToUserID;constraint:OnDelete:CASCADE"`
}

// Friendship is symmetric, stored as two directed rows created in one transaction.
type Friendship struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friends_pair"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friends_pair;check:chk_friends_not_self,user_id <> friend_id"`
	CreatedAt time.Time

	Friend Profile `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
}

// BeforeSave rejects self-friendships before the check constraint ever sees them.
func (f *Friendship) BeforeSave(tx *gorm.DB) error {
	if f.UserID == f.FriendID {
		return errors.New("cannot create a friendship with yourself")
	}
	return nil
}
