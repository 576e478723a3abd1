package models

import "time"

// Level tiers, ordered. Cosmetic unlocks and the XP thresholds hang off these.
type Level string

const (
	LevelBronzo   Level = "bronzo"
	LevelArgento  Level = "argento"
	LevelOro      Level = "oro"
	LevelDiamante Level = "diamante"
)

// ProfileStats are the counters missions feed on. All of them only grow
// during normal play.
type ProfileStats struct {
	LinksCreated         int      `json:"linksCreated"`
	StylesModified       int      `json:"stylesModified"`
	LinksWithDescription int      `json:"linksWithDescription"`
	UniqueBorderColors   []string `json:"uniqueBorderColors"`
}

// UserProfile is the single profile record for this installation.
// Avatar and CustomAvatar are mutually exclusive: setting one clears the other.
type UserProfile struct {
	ID                string       `json:"id"`
	Username          string       `json:"username"`
	Avatar            int          `json:"avatar"` // 1..5 built-in avatars
	CustomAvatar      string       `json:"customAvatar,omitempty"`
	Level             Level        `json:"level"` // derived from XP, never set directly
	XP                int          `json:"xp"`
	CreatedAt         time.Time    `json:"createdAt"`
	LastLoginDate     time.Time    `json:"lastLoginDate"`
	ConsecutiveLogins int          `json:"consecutiveLogins"`
	Stats             ProfileStats `json:"stats"`
}

// AvatarCount is how many built-in avatar images exist.
const AvatarCount = 5

// HasUniqueColor reports whether the color is already in the profile's set.
func (p *UserProfile) HasUniqueColor(color string) bool {
	for _, c := range p.Stats.UniqueBorderColors {
		if c == color {
			return true
		}
	}
	return false
}
