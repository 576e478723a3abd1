package services

import (
	"link-organizer-system/models"

	"go.uber.org/zap"
)

// Action names the user gesture that triggered a progress recompute. Progress
// is always re-synced from the statistics for every mission type, so the
// action only feeds logging and reward reasons.
type Action string

const (
	ActionLinkAdded    Action = "link_added"
	ActionLinkUpdated  Action = "link_updated"
	ActionStyleChanged Action = "style_changed"
	ActionLogin        Action = "login"
	ActionSync         Action = "sync"
)

// MissionService owns the mission catalog and the progress state machine:
// {progress: 0..target, completed: false} → {progress: target, completed: true},
// one-directional, reward granted exactly once at the transition.
type MissionService struct {
	store Store
	log   *zap.Logger
}

func NewMissionService(store Store, log *zap.Logger) *MissionService {
	return &MissionService{store: store, log: log}
}

// Load returns the stored missions, seeding the catalog on first use.
func (s *MissionService) Load() []models.Mission {
	var missions []models.Mission
	if s.store.Load(KeyMissions, &missions) && len(missions) > 0 {
		return missions
	}
	missions = make([]models.Mission, len(models.DefaultMissions))
	copy(missions, models.DefaultMissions)
	s.store.Save(KeyMissions, missions)
	return missions
}

func (s *MissionService) Save(missions []models.Mission) {
	s.store.Save(KeyMissions, missions)
}

// statFor maps a mission type to the profile statistic that drives it.
func statFor(t models.MissionType, profile *models.UserProfile) int {
	switch t {
	case models.MissionLinks:
		return profile.Stats.LinksCreated
	case models.MissionLogin:
		return profile.ConsecutiveLogins
	case models.MissionStyle:
		return profile.Stats.StylesModified
	case models.MissionDescription:
		return profile.Stats.LinksWithDescription
	case models.MissionColors:
		return len(profile.Stats.UniqueBorderColors)
	}
	return 0
}

// Recompute re-syncs every incomplete mission's progress from the current
// profile statistics and detects completion transitions. It returns the
// updated missions and the total XP gained from missions that completed in
// this call. Recomputing with unchanged statistics is idempotent: the second
// call yields the same state and zero additional XP.
//
// Completed missions are skipped entirely, so a statistic that later
// regresses can leave displayed progress below target on a mission that
// stays completed. That disagreement is inherited behavior, kept on purpose.
func (s *MissionService) Recompute(profile *models.UserProfile, missions []models.Mission, action Action) ([]models.Mission, int) {
	xpGained := 0
	for i := range missions {
		m := &missions[i]
		if m.Completed {
			continue
		}
		stat := statFor(m.Type, profile)
		progress := stat
		if progress > m.Target {
			progress = m.Target
		}
		m.Progress = progress
		if m.Progress >= m.Target {
			m.Completed = true
			xpGained += m.Reward
			s.log.Info("mission completed",
				zap.String("mission", m.ID),
				zap.String("action", string(action)),
				zap.Int("reward_xp", m.Reward),
			)
		}
	}
	return missions, xpGained
}
