package services

import (
	"strings"

	"link-organizer-system/models"

	"go.uber.org/zap"
)

// ProgressionService runs the gamification flow behind every qualifying
// action: update profile statistics, recompute mission progress, grant
// reward XP, re-derive the level tier and persist everything. A level-up is
// reported but is not state of its own.
type ProgressionService struct {
	profiles *ProfileService
	missions *MissionService
	log      *zap.Logger
}

func NewProgressionService(profiles *ProfileService, missions *MissionService, log *zap.Logger) *ProgressionService {
	return &ProgressionService{profiles: profiles, missions: missions, log: log}
}

// ProgressUpdate is what an action reports back to the caller.
type ProgressUpdate struct {
	Profile           models.UserProfile `json:"profile"`
	Missions          []models.Mission   `json:"missions"`
	XPGained          int                `json:"xp_gained"`
	CompletedMissions []models.Mission   `json:"completed_missions"`
	LeveledUp         bool               `json:"leveled_up"`
	PreviousLevel     models.Level       `json:"previous_level"`
}

func normalizeColor(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}

func addUniqueColor(profile *models.UserProfile, color string) {
	color = normalizeColor(color)
	if color == "" || profile.HasUniqueColor(color) {
		return
	}
	profile.Stats.UniqueBorderColors = append(profile.Stats.UniqueBorderColors, color)
}

// apply loads the profile (running the daily streak logic), mutates its
// statistics, recomputes missions, applies earned XP and persists both
// records. mutate may be nil for pure re-syncs.
func (s *ProgressionService) apply(action Action, mutate func(*models.UserProfile)) ProgressUpdate {
	profile := s.profiles.Load()
	if mutate != nil {
		mutate(&profile)
	}
	return s.recomputeAndPersist(action, profile)
}

func (s *ProgressionService) recomputeAndPersist(action Action, profile models.UserProfile) ProgressUpdate {
	missions := s.missions.Load()

	var before []models.Mission
	before = append(before, missions...)

	missions, xpGained := s.missions.Recompute(&profile, missions, action)

	var completed []models.Mission
	for i, m := range missions {
		if m.Completed && !before[i].Completed {
			completed = append(completed, m)
		}
	}

	prevLevel := profile.Level
	profile.XP += xpGained
	profile.Level = CalculateLevel(profile.XP)

	s.profiles.Save(profile)
	s.missions.Save(missions)

	leveledUp := profile.Level != prevLevel
	if leveledUp {
		s.log.Info("level up",
			zap.String("from", string(prevLevel)),
			zap.String("to", string(profile.Level)),
			zap.Int("xp", profile.XP),
		)
	}

	return ProgressUpdate{
		Profile:           profile,
		Missions:          missions,
		XPGained:          xpGained,
		CompletedMissions: completed,
		LeveledUp:         leveledUp,
		PreviousLevel:     prevLevel,
	}
}

// RecordLinkCreated counts a new link: links created, description coverage
// and border-color variety all move.
func (s *ProgressionService) RecordLinkCreated(link models.LinkItem) ProgressUpdate {
	return s.apply(ActionLinkAdded, func(p *models.UserProfile) {
		p.Stats.LinksCreated++
		if link.Description != "" {
			p.Stats.LinksWithDescription++
		}
		addUniqueColor(p, link.Style.BorderColor)
	})
}

// RecordLinkUpdated counts what an edit changed: a description appearing on a
// link that had none, and any new border color. Removing a description does
// not decrement the counter; the statistics only grow.
func (s *ProgressionService) RecordLinkUpdated(before, after models.LinkItem) ProgressUpdate {
	return s.apply(ActionLinkUpdated, func(p *models.UserProfile) {
		if before.Description == "" && after.Description != "" {
			p.Stats.LinksWithDescription++
		}
		if normalizeColor(before.Style.BorderColor) != normalizeColor(after.Style.BorderColor) {
			addUniqueColor(p, after.Style.BorderColor)
		}
	})
}

// RecordStyleModified counts an explicit style edit.
func (s *ProgressionService) RecordStyleModified(style models.LinkStyle) ProgressUpdate {
	return s.apply(ActionStyleChanged, func(p *models.UserProfile) {
		p.Stats.StylesModified++
		addUniqueColor(p, style.BorderColor)
	})
}

// SyncLogin is the "board opened" action: the profile load rolls the daily
// streak and the login missions re-sync from it.
func (s *ProgressionService) SyncLogin() ProgressUpdate {
	return s.apply(ActionLogin, nil)
}

// Resync recomputes mission progress from the stored profile without touching
// the login streak. Safe to run from background jobs at any hour; recompute
// is idempotent, so an unchanged profile yields no XP.
func (s *ProgressionService) Resync() (ProgressUpdate, bool) {
	profile, ok := s.profiles.Peek()
	if !ok {
		return ProgressUpdate{}, false
	}
	return s.recomputeAndPersist(ActionSync, profile), true
}
