package services

import (
	"link-organizer-system/models"

	"go.uber.org/zap"
)

// SettingsService stores the board cosmetics: page title, background choice
// and font. Each lives under its own key.
type SettingsService struct {
	store Store
	log   *zap.Logger
}

func NewSettingsService(store Store, log *zap.Logger) *SettingsService {
	return &SettingsService{store: store, log: log}
}

func (s *SettingsService) PageTitle() string {
	var title string
	if s.store.Load(KeyPageTitle, &title) && title != "" {
		return title
	}
	return models.DefaultPageTitle
}

func (s *SettingsService) SetPageTitle(title string) {
	s.store.Save(KeyPageTitle, title)
}

// Background returns the selected background id and, when the sentinel is
// stored, the custom image data (an opaque data-URL string).
func (s *SettingsService) Background() (models.BackgroundSelection, string) {
	sel := models.BackgroundSelection{ID: 1}
	s.store.Load(KeyBackground, &sel)
	if sel.ID != models.CustomBackgroundID {
		return sel, ""
	}
	var image string
	s.store.Load(KeyCustomBackground, &image)
	return sel, image
}

// SetBackground stores a built-in background choice.
func (s *SettingsService) SetBackground(id int) {
	s.store.Save(KeyBackground, models.BackgroundSelection{ID: id})
}

// SetCustomBackground stores an uploaded image (data-URL, treated as opaque)
// and switches the selection to the custom sentinel.
func (s *SettingsService) SetCustomBackground(image string) {
	s.store.Save(KeyCustomBackground, image)
	s.store.Save(KeyBackground, models.BackgroundSelection{ID: models.CustomBackgroundID})
}

func (s *SettingsService) Font() models.FontSelection {
	var font models.FontSelection
	if s.store.Load(KeyFont, &font) && font.Family != "" {
		return font
	}
	return models.FontSelection{Family: models.DefaultFont}
}

func (s *SettingsService) SetFont(family string) {
	s.store.Save(KeyFont, models.FontSelection{Family: family})
}
