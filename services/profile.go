package services

import (
	"time"

	"link-organizer-system/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService owns the single user profile record and the login-streak
// bookkeeping that runs on load.
type ProfileService struct {
	store Store
	log   *zap.Logger
}

func NewProfileService(store Store, log *zap.Logger) *ProfileService {
	return &ProfileService{store: store, log: log}
}

func defaultProfile(now time.Time) models.UserProfile {
	return models.UserProfile{
		ID:                uuid.NewString(),
		Username:          "Utente",
		Avatar:            1,
		Level:             models.LevelBronzo,
		XP:                0,
		CreatedAt:         now,
		LastLoginDate:     now,
		ConsecutiveLogins: 1,
		Stats: models.ProfileStats{
			UniqueBorderColors: []string{},
		},
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// Load returns the stored profile, creating the default one on first use.
// It recomputes the consecutive-login streak against the calendar day in
// local time and persists the result immediately — a side-effecting read, so
// the streak logic runs exactly once per calendar day no matter how many
// times the board is opened.
func (s *ProfileService) Load() models.UserProfile {
	return s.loadAt(time.Now())
}

func (s *ProfileService) loadAt(now time.Time) models.UserProfile {
	var profile models.UserProfile
	if !s.store.Load(KeyProfile, &profile) {
		profile = defaultProfile(now)
		s.store.Save(KeyProfile, profile)
		s.log.Info("created default profile", zap.String("id", profile.ID))
		return profile
	}

	yesterday := now.AddDate(0, 0, -1)
	switch {
	case sameCalendarDay(profile.LastLoginDate, now):
		// already counted today
	case sameCalendarDay(profile.LastLoginDate, yesterday):
		profile.ConsecutiveLogins++
		profile.LastLoginDate = now
	default:
		// gap of two or more days, or clock skew into the past
		profile.ConsecutiveLogins = 1
		profile.LastLoginDate = now
	}

	// level is derived state; repair it if a stored blob drifted
	profile.Level = CalculateLevel(profile.XP)
	if profile.Stats.UniqueBorderColors == nil {
		profile.Stats.UniqueBorderColors = []string{}
	}

	s.store.Save(KeyProfile, profile)
	return profile
}

// Peek reads the stored profile without the streak side effect. Background
// jobs use it so they can never fabricate a login day.
func (s *ProfileService) Peek() (models.UserProfile, bool) {
	var profile models.UserProfile
	if !s.store.Load(KeyProfile, &profile) {
		return models.UserProfile{}, false
	}
	return profile, true
}

func (s *ProfileService) Save(profile models.UserProfile) {
	s.store.Save(KeyProfile, profile)
}

// UpdateIdentity applies username and avatar changes. A built-in avatar and a
// custom one are mutually exclusive: setting either clears the other.
func (s *ProfileService) UpdateIdentity(username *string, avatar *int, customAvatar *string) models.UserProfile {
	profile := s.Load()
	if username != nil && *username != "" {
		profile.Username = *username
	}
	if avatar != nil {
		profile.Avatar = *avatar
		profile.CustomAvatar = ""
	}
	if customAvatar != nil && *customAvatar != "" {
		profile.CustomAvatar = *customAvatar
		profile.Avatar = 0
	}
	s.Save(profile)
	return profile
}
