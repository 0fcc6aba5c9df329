package handlers

import (
	"net/http"

	"github.com/gamercv/gamercv-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FriendHandler struct {
	friends *services.FriendService
}

func NewFriendHandler(friends *services.FriendService) *FriendHandler {
	return &FriendHandler{friends: friends}
}

// SendRequest sends a friend request addressed by username.
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.friends.SendRequest(currentUserID(c), req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         request.ID,
		"status":     request.Status,
		"created_at": request.CreatedAt,
	})
}

// ListRequests returns the caller's incoming pending requests.
func (h *FriendHandler) ListRequests(c *gin.Context) {
	requests, err := h.friends.ListIncomingRequests(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friend requests"})
		return
	}

	items := make([]gin.H, len(requests))
	for i, r := range requests {
		items[i] = gin.H{
			"id":         r.ID,
			"status":     r.Status,
			"created_at": r.CreatedAt,
			"from": gin.H{
				"id":           r.FromUser.ID,
				"username":     r.FromUser.Username,
				"display_name": r.FromUser.DisplayName,
				"avatar_url":   r.FromUser.AvatarURL,
			},
		}
	}
	c.JSON(http.StatusOK, gin.H{"requests": items})
}

func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	if err := h.friends.Accept(currentUserID(c), requestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend request accepted"})
}

func (h *FriendHandler) RejectRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	if err := h.friends.Reject(currentUserID(c), requestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend request rejected"})
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	friends, err := h.friends.ListFriends(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load friends"})
		return
	}

	items := make([]gin.H, len(friends))
	for i, f := range friends {
		items[i] = gin.H{
			"id":           f.ID,
			"username":     f.Username,
			"display_name": f.DisplayName,
			"avatar_url":   f.AvatarURL,
		}
	}
	c.JSON(http.StatusOK, gin.H{"friends": items})
}

func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid friend id"})
		return
	}

	if err := h.friends.RemoveFriend(currentUserID(c), friendID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend removed"})
}
