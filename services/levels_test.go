package services

import (
	"testing"

	"link-organizer-system/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want models.Level
	}{
		{0, models.LevelBronzo},
		{99, models.LevelBronzo},
		{100, models.LevelArgento},
		{299, models.LevelArgento},
		{300, models.LevelOro},
		{599, models.LevelOro},
		{600, models.LevelDiamante},
		{10000, models.LevelDiamante},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CalculateLevel(tc.xp), "xp=%d", tc.xp)
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	prev := CalculateLevel(0)
	for xp := 1; xp <= 700; xp++ {
		cur := CalculateLevel(xp)
		assert.GreaterOrEqual(t, levelIndex(cur), levelIndex(prev), "level regressed at xp=%d", xp)
		prev = cur
	}
}

func TestNextLevelXP(t *testing.T) {
	assert.Equal(t, 100, NextLevelXP(models.LevelBronzo))
	assert.Equal(t, 300, NextLevelXP(models.LevelArgento))
	assert.Equal(t, 600, NextLevelXP(models.LevelOro))
	// at the top tier the threshold of diamante itself comes back; callers
	// clamp the remainder at zero
	assert.Equal(t, 600, NextLevelXP(models.LevelDiamante))
}

func TestLevelDisplayName(t *testing.T) {
	assert.Equal(t, "Bronzo", LevelDisplayName(models.LevelBronzo))
	assert.Equal(t, "Diamante", LevelDisplayName(models.LevelDiamante))
}

func TestOutlineUnlocked(t *testing.T) {
	assert.True(t, OutlineUnlocked(models.LevelBronzo, models.OutlineNone))
	assert.True(t, OutlineUnlocked(models.LevelBronzo, ""))
	assert.True(t, OutlineUnlocked(models.LevelBronzo, models.OutlineBronzo))
	assert.False(t, OutlineUnlocked(models.LevelBronzo, models.OutlineArgento))
	assert.False(t, OutlineUnlocked(models.LevelOro, models.OutlineDiamante))
	assert.True(t, OutlineUnlocked(models.LevelOro, models.OutlineArgento))
	assert.True(t, OutlineUnlocked(models.LevelDiamante, models.OutlineDiamante))
}
