package services

import (
	"link-organizer-system/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// XP thresholds per level tier. A tier is reached once total XP meets its
// threshold; XP never decreases during normal play, so tiers are sticky.
var LevelRequirements = map[models.Level]int{
	models.LevelBronzo:   0,
	models.LevelArgento:  100,
	models.LevelOro:      300,
	models.LevelDiamante: 600,
}

var levelOrder = []models.Level{
	models.LevelBronzo,
	models.LevelArgento,
	models.LevelOro,
	models.LevelDiamante,
}

// CalculateLevel returns the highest tier whose threshold is <= xp.
func CalculateLevel(xp int) models.Level {
	level := models.LevelBronzo
	for _, l := range levelOrder {
		if xp >= LevelRequirements[l] {
			level = l
		}
	}
	return level
}

// NextLevelXP returns the threshold of the tier after level, or the diamante
// threshold when already at the top. Callers computing a remainder must clamp
// at zero for diamante.
func NextLevelXP(level models.Level) int {
	for i, l := range levelOrder {
		if l == level && i+1 < len(levelOrder) {
			return LevelRequirements[levelOrder[i+1]]
		}
	}
	return LevelRequirements[models.LevelDiamante]
}

var levelTitle = cases.Title(language.Italian)

// LevelDisplayName renders the tier name for API responses ("bronzo" → "Bronzo").
func LevelDisplayName(level models.Level) string {
	return levelTitle.String(string(level))
}

func levelIndex(level models.Level) int {
	for i, l := range levelOrder {
		if l == level {
			return i
		}
	}
	return 0
}

// OutlineUnlocked reports whether the user's tier unlocks the decorative
// outline. Outlines are named after the tier that unlocks them.
func OutlineUnlocked(level models.Level, outline models.Outline) bool {
	if outline == "" || outline == models.OutlineNone {
		return true
	}
	return levelIndex(level) >= levelIndex(models.Level(outline))
}
