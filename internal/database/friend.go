package database

import (
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (d *Database) CreateFriendRequest(request *models.FriendRequest) error {
	return d.db.Create(request).Error
}

func (d *Database) GetFriendRequest(id uuid.UUID) (*models.FriendRequest, error) {
	request := models.FriendRequest{}
	if err := d.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// GetFriendRequestBetween looks up a request in either direction between two users.
func (d *Database) GetFriendRequestBetween(a, b uuid.UUID) (*models.FriendRequest, error) {
	request := models.FriendRequest{}
	err := d.db.Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", a, b, b, a).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (d *Database) ListPendingFriendRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := d.db.Preload("FromUser").
		Where("to_user_id = ? AND status = ?", userID, models.FriendRequestPending).
		Order("created_at").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptFriendRequest transitions a pending request to accepted and inserts both
// directed friendship rows as one atomic unit.
func (d *Database) AcceptFriendRequest(request *models.FriendRequest) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND status = ?", request.ID, models.FriendRequestPending).
			Updates(map[string]interface{}{"status": models.FriendRequestAccepted, "responded_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(&models.Friendship{UserID: request.FromUserID, FriendID: request.ToUserID}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Friendship{UserID: request.ToUserID, FriendID: request.FromUserID}).Error
	})
}

func (d *Database) RejectFriendRequest(request *models.FriendRequest) error {
	now := time.Now()
	result := d.db.Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", request.ID, models.FriendRequestPending).
		Updates(map[string]interface{}{"status": models.FriendRequestRejected, "responded_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (d *Database) ListFriends(userID uuid.UUID) ([]models.Profile, error) {
	var friendships []models.Friendship
	err := d.db.Preload("Friend").Where("user_id = ?", userID).Order("created_at").Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	friends := make([]models.Profile, len(friendships))
	for i, f := range friendships {
		friends[i] = f.Friend
	}
	return friends, nil
}

// RemoveFriend deletes both directed rows of a friendship. Also clears the old
// request pair so the users can friend each other again later.
func (d *Database) RemoveFriend(userID, friendID uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).Delete(&models.Friendship{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userID, friendID, friendID, userID).Delete(&models.FriendRequest{}).Error
	})
}
