package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// AccountService owns provisioning and everything else on the profile/settings pair.
type AccountService struct {
	store    AccountStore
	activity ActivityStore
}

func NewAccountService(store AccountStore, activity ActivityStore) *AccountService {
	return &AccountService{store: store, activity: activity}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register provisions a new account: one profile plus one settings row, created
// transactionally. A missing username falls back to the email local part. Any
// uniqueness violation fails the whole operation with no partial pair left behind.
func (s *AccountService) Register(in RegisterInput) (*models.Profile, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = strings.SplitN(in.Email, "@", 2)[0]
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidInput
	}
	if in.Email == "" || len(in.Password) < 8 {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Username:     username,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
	}
	if err := s.store.CreateAccount(profile, models.DefaultSettings(profile.ID)); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyDuplicate(username, profile.Email)
		}
		return nil, err
	}

	s.logActivity(profile.ID, models.ActivityAccountCreated, "Account created", "")
	log.WithFields(log.Fields{"user_id": profile.ID, "username": username}).Info("account provisioned")
	return profile, nil
}

// classifyDuplicate decides which field collided after a unique violation.
func (s *AccountService) classifyDuplicate(username, email string) error {
	if _, err := s.store.GetProfileByUsername(username); err == nil {
		return ErrDuplicateUsername
	}
	if _, err := s.store.GetProfileByEmail(email); err == nil {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

// Authenticate checks credentials and stamps last_login_at.
func (s *AccountService) Authenticate(email, password string) (*models.Profile, error) {
	profile, err := s.store.GetProfileByEmail(strings.ToLower(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.store.UpdateLastLogin(profile.ID); err != nil {
		log.WithError(err).Warn("failed to update last login")
	}
	return profile, nil
}

func (s *AccountService) GetProfile(id uuid.UUID) (*models.Profile, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return profile, nil
}

// GetPublicProfile returns another user's profile only when they opted in.
func (s *AccountService) GetPublicProfile(id uuid.UUID) (*models.Profile, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	settings, err := s.store.GetSettings(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if !settings.ProfilePublic {
		return nil, ErrForbidden
	}
	return profile, nil
}

type ProfileUpdate struct {
	Username          *string
	Email             *string
	DisplayName       *string
	Bio               *string
	AvatarURL         *string
	Timezone          *string
	PreferredLanguage *string
}

// UpdateProfile applies a partial update; username/email changes re-check uniqueness.
func (s *AccountService) UpdateProfile(id uuid.UUID, update ProfileUpdate) (*models.Profile, error) {
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if update.Username != nil && *update.Username != profile.Username {
		if !usernamePattern.MatchString(*update.Username) {
			return nil, ErrInvalidInput
		}
		profile.Username = *update.Username
	}
	if update.Email != nil && *update.Email != profile.Email {
		profile.Email = strings.ToLower(*update.Email)
	}
	if update.DisplayName != nil {
		profile.DisplayName = *update.DisplayName
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		profile.AvatarURL = *update.AvatarURL
	}
	if update.Timezone != nil {
		profile.Timezone = *update.Timezone
	}
	if update.PreferredLanguage != nil {
		profile.PreferredLanguage = *update.PreferredLanguage
	}

	if err := s.store.UpdateProfile(profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyDuplicate(profile.Username, profile.Email)
		}
		return nil, err
	}
	return profile, nil
}

func (s *AccountService) GetSettings(id uuid.UUID) (*models.UserSettings, error) {
	settings, err := s.store.GetSettings(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return settings, nil
}

func (s *AccountService) UpdateSettings(settings *models.UserSettings) error {
	if settings.StatsRefreshInterval < 60 {
		return ErrInvalidInput
	}
	return s.store.UpdateSettings(settings)
}

// DeleteAccount removes the profile and all owned data in one transaction.
func (s *AccountService) DeleteAccount(id uuid.UUID) error {
	if err := s.store.DeleteAccount(id); err != nil {
		return translateNotFound(err)
	}
	log.WithField("user_id", id).Info("account deleted")
	return nil
}

func (s *AccountService) logActivity(userID uuid.UUID, activityType, title, description string) {
	err := s.activity.CreateActivity(&models.Activity{
		UserID:      userID,
		Type:        activityType,
		Title:       title,
		Description: description,
	})
	if err != nil {
		log.WithError(err).Warn("failed to record activity")
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
