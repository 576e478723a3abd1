package models

// Built-in background count mirrors the selector catalog (ids 1..13).
const BackgroundCount = 13

// CustomBackgroundID is the sentinel stored when the user uploaded their own
// background image; the image data lives under its own storage key.
const CustomBackgroundID = -1

// BackgroundSelection is the persisted background choice.
type BackgroundSelection struct {
	ID int `json:"id"`
}

// FontSelection is the persisted font choice (a CSS font-family value).
type FontSelection struct {
	Family string `json:"family"`
}

// DefaultFont matches the selector's first entry.
const DefaultFont = "system-ui, sans-serif"

// DefaultPageTitle is shown until the user renames the board.
const DefaultPageTitle = "I Miei Link"
