package services

import "errors"

// Sentinel errors for the business layer. Handlers map these onto HTTP statuses;
// nothing below the handlers knows about status codes.
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrDuplicateUsername      = errors.New("username is already taken")
	ErrDuplicateEmail         = errors.New("email is already registered")
	ErrDuplicateGame          = errors.New("game is already registered for this account")
	ErrDuplicateFriendRequest = errors.New("friend request already exists")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrSelfFriend             = errors.New("cannot send a friend request to yourself")
	ErrFriendRequestsClosed   = errors.New("user does not accept friend requests")
	ErrStatsUnsupported       = errors.New("category does not support stats tracking")
	ErrUpstream               = errors.New("stats provider unavailable")
	ErrInvalidCredentials     = errors.New("invalid email or password")
)
