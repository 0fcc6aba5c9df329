package services

import (
	"errors"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FriendService struct {
	store    FriendStore
	activity ActivityStore
}

func NewFriendService(store FriendStore, activity ActivityStore) *FriendService {
	return &FriendService{store: store, activity: activity}
}

// SendRequest creates a pending friend request addressed by username. A request in
// either direction that is still pending or already accepted blocks a new one.
func (s *FriendService) SendRequest(fromUserID uuid.UUID, toUsername string) (*models.FriendRequest, error) {
	target, err := s.store.GetProfileByUsername(toUsername)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if target.ID == fromUserID {
		return nil, ErrSelfFriend
	}

	settings, err := s.store.GetSettings(target.ID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if !settings.AllowFriendRequests {
		return nil, ErrFriendRequestsClosed
	}

	if existing, err := s.store.GetFriendRequestBetween(fromUserID, target.ID); err == nil {
		if existing.Status != models.FriendRequestRejected {
			return nil, ErrDuplicateFriendRequest
		}
	}

	request := &models.FriendRequest{
		FromUserID: fromUserID,
		ToUserID:   target.ID,
		Status:     models.FriendRequestPending,
	}
	if err := s.store.CreateFriendRequest(request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateFriendRequest
		}
		return nil, err
	}
	return request, nil
}

func (s *FriendService) ListIncomingRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	return s.store.ListPendingFriendRequests(userID)
}

// Accept transitions a pending request and creates the symmetric friendship rows.
// Only the recipient may accept.
func (s *FriendService) Accept(userID, requestID uuid.UUID) error {
	request, err := s.store.GetFriendRequest(requestID)
	if err != nil {
		return translateNotFound(err)
	}
	if request.ToUserID != userID {
		return ErrForbidden
	}
	if request.Status != models.FriendRequestPending {
		return ErrNotFound
	}
	if err := s.store.AcceptFriendRequest(request); err != nil {
		return translateNotFound(err)
	}

	s.logFriendActivity(request.FromUserID, request.ToUserID)
	s.logFriendActivity(request.ToUserID, request.FromUserID)
	return nil
}

// Reject transitions a pending request; only the recipient may reject.
func (s *FriendService) Reject(userID, requestID uuid.UUID) error {
	request, err := s.store.GetFriendRequest(requestID)
	if err != nil {
		return translateNotFound(err)
	}
	if request.ToUserID != userID {
		return ErrForbidden
	}
	if request.Status != models.FriendRequestPending {
		return ErrNotFound
	}
	return translateNotFound(s.store.RejectFriendRequest(request))
}

func (s *FriendService) ListFriends(userID uuid.UUID) ([]models.Profile, error) {
	return s.store.ListFriends(userID)
}

func (s *FriendService) RemoveFriend(userID, friendID uuid.UUID) error {
	return translateNotFound(s.store.RemoveFriend(userID, friendID))
}

func (s *FriendService) logFriendActivity(userID, friendID uuid.UUID) {
	friend, err := s.store.GetProfile(friendID)
	if err != nil {
		return
	}
	err = s.activity.CreateActivity(&models.Activity{
		UserID: userID,
		Type:   models.ActivityFriendAdded,
		Title:  "Now friends with " + friend.Username,
	})
	if err != nil {
		log.WithError(err).Warn("failed to record activity")
	}
}
