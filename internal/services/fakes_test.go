package services

import (
	"sort"
	"sync"
	"time"

	"github.com/gamercv/gamercv-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// fakeStore is an in-memory stand-in for the database wrapper. It enforces the same
// uniqueness rules and returns the same gorm sentinel errors the real store would.
type fakeStore struct {
	mu          sync.Mutex
	profiles    map[uuid.UUID]*models.Profile
	settings    map[uuid.UUID]*models.UserSettings
	categories  map[uuid.UUID]*models.GameCategory
	games       map[uuid.UUID]*models.Game
	stats       map[uuid.UUID]*models.GameStats
	activities  []models.Activity
	requests    map[uuid.UUID]*models.FriendRequest
	friendships []models.Friendship
	clock       time.Time
}

func newFakeStore() *fakeStore {
	s := &fakeStore{
		profiles:   make(map[uuid.UUID]*models.Profile),
		settings:   make(map[uuid.UUID]*models.UserSettings),
		categories: make(map[uuid.UUID]*models.GameCategory),
		games:      make(map[uuid.UUID]*models.Game),
		stats:      make(map[uuid.UUID]*models.GameStats),
		requests:   make(map[uuid.UUID]*models.FriendRequest),
		clock:      time.Now(),
	}
	for _, c := range models.SeedCategories {
		cat := c
		cat.ID = uuid.New()
		s.categories[cat.ID] = &cat
	}
	return s
}

// tick returns a strictly increasing timestamp so creation order is deterministic.
func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

// AccountStore

func (s *fakeStore) CreateAccount(profile *models.Profile, settings *models.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.Username == profile.Username || p.Email == profile.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	profile.ID = uuid.New()
	profile.CreatedAt = s.tick()
	s.profiles[profile.ID] = profile
	settings.UserID = profile.ID
	s.settings[profile.ID] = settings
	return nil
}

func (s *fakeStore) GetProfile(id uuid.UUID) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *fakeStore) GetProfileByEmail(email string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) GetProfileByUsername(username string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) UpdateProfile(profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.ID != profile.ID && (p.Username == profile.Username || p.Email == profile.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	s.profiles[profile.ID] = profile
	return nil
}

func (s *fakeStore) UpdateLastLogin(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	p.LastLoginAt = &now
	return nil
}

func (s *fakeStore) GetSettings(userID uuid.UUID) (*models.UserSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.settings[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return st, nil
}

func (s *fakeStore) UpdateSettings(settings *models.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.settings[settings.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.settings[settings.UserID] = settings
	return nil
}

func (s *fakeStore) DeleteAccount(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for gameID, g := range s.games {
		if g.UserID == id {
			delete(s.games, gameID)
			delete(s.stats, gameID)
		}
	}
	delete(s.settings, id)
	delete(s.profiles, id)
	return nil
}

// GameStore

func (s *fakeStore) GetCategoryByName(name string) (*models.GameCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) ListCategories() ([]models.GameCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.GameCategory, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeStore) CreateGame(game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.UserID == game.UserID && g.Name == game.Name && g.Username == game.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	game.ID = uuid.New()
	game.CreatedAt = s.tick()
	game.UpdatedAt = game.CreatedAt
	s.games[game.ID] = game
	return nil
}

func (s *fakeStore) GetUserGame(userID, gameID uuid.UUID) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok || g.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	out := *g
	if cat, ok := s.categories[g.CategoryID]; ok {
		out.Category = *cat
	}
	return &out, nil
}

func (s *fakeStore) ListUserGames(userID uuid.UUID, categoryID *uuid.UUID, search string, limit, offset int) ([]models.Game, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Game
	for _, g := range s.games {
		if g.UserID != userID {
			continue
		}
		if categoryID != nil && g.CategoryID != *categoryID {
			continue
		}
		out := *g
		if cat, ok := s.categories[g.CategoryID]; ok {
			out.Category = *cat
		}
		if st, ok := s.stats[g.ID]; ok {
			snapshot := *st
			out.Stats = &snapshot
		}
		all = append(all, out)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (s *fakeStore) UpdateGame(game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.ID != game.ID && g.UserID == game.UserID && g.Name == game.Name && g.Username == game.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	game.UpdatedAt = s.tick()
	s.games[game.ID] = game
	return nil
}

func (s *fakeStore) DeleteUserGame(userID, gameID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameID]
	if !ok || g.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(s.games, gameID)
	delete(s.stats, gameID)
	return nil
}

// StatsStore

func (s *fakeStore) UpsertGameStats(gameID uuid.UUID, payload datatypes.JSON, refreshedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.stats[gameID]; ok {
		existing.StatsData = payload
		existing.LastRefreshed = refreshedAt
		return nil
	}
	s.stats[gameID] = &models.GameStats{
		ID:            uuid.New(),
		GameID:        gameID,
		StatsData:     payload,
		LastRefreshed: refreshedAt,
	}
	return nil
}

func (s *fakeStore) GetGameStats(gameID uuid.UUID) (*models.GameStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stats[gameID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *st
	return &out, nil
}

// ActivityStore

func (s *fakeStore) CreateActivity(activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity.ID = uuid.New()
	activity.CreatedAt = s.tick()
	s.activities = append(s.activities, *activity)
	return nil
}

func (s *fakeStore) ListUserActivity(userID uuid.UUID, limit, offset int) ([]models.Activity, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Activity
	for _, a := range s.activities {
		if a.UserID == userID {
			all = append(all, a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// FriendStore

func (s *fakeStore) CreateFriendRequest(request *models.FriendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.FromUserID == request.FromUserID && r.ToUserID == request.ToUserID {
			return gorm.ErrDuplicatedKey
		}
	}
	request.ID = uuid.New()
	request.CreatedAt = s.tick()
	s.requests[request.ID] = request
	return nil
}

func (s *fakeStore) GetFriendRequest(id uuid.UUID) (*models.FriendRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *r
	return &out, nil
}

func (s *fakeStore) GetFriendRequestBetween(a, b uuid.UUID) (*models.FriendRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if (r.FromUserID == a && r.ToUserID == b) || (r.FromUserID == b && r.ToUserID == a) {
			out := *r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) ListPendingFriendRequests(userID uuid.UUID) ([]models.FriendRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FriendRequest
	for _, r := range s.requests {
		if r.ToUserID == userID && r.Status == models.FriendRequestPending {
			req := *r
			if from, ok := s.profiles[r.FromUserID]; ok {
				req.FromUser = *from
			}
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) AcceptFriendRequest(request *models.FriendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[request.ID]
	if !ok || r.Status != models.FriendRequestPending {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	r.Status = models.FriendRequestAccepted
	r.RespondedAt = &now
	s.friendships = append(s.friendships,
		models.Friendship{ID: uuid.New(), UserID: r.FromUserID, FriendID: r.ToUserID},
		models.Friendship{ID: uuid.New(), UserID: r.ToUserID, FriendID: r.FromUserID},
	)
	return nil
}

func (s *fakeStore) RejectFriendRequest(request *models.FriendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[request.ID]
	if !ok || r.Status != models.FriendRequestPending {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	r.Status = models.FriendRequestRejected
	r.RespondedAt = &now
	return nil
}

func (s *fakeStore) ListFriends(userID uuid.UUID) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Profile
	for _, f := range s.friendships {
		if f.UserID == userID {
			if p, ok := s.profiles[f.FriendID]; ok {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (s *fakeStore) RemoveFriend(userID, friendID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []models.Friendship
	removed := false
	for _, f := range s.friendships {
		match := (f.UserID == userID && f.FriendID == friendID) || (f.UserID == friendID && f.FriendID == userID)
		if match {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return gorm.ErrRecordNotFound
	}
	s.friendships = kept
	for id, r := range s.requests {
		if (r.FromUserID == userID && r.ToUserID == friendID) || (r.FromUserID == friendID && r.ToUserID == userID) {
			delete(s.requests, id)
		}
	}
	return nil
}
