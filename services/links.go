package services

import (
	"link-organizer-system/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LinkService is CRUD over the stored bookmark list.
type LinkService struct {
	store Store
	log   *zap.Logger
}

func NewLinkService(store Store, log *zap.Logger) *LinkService {
	return &LinkService{store: store, log: log}
}

// LoadAll returns the stored links, or the example seed set when nothing has
// been saved yet. The seed is not persisted until the first mutation.
func (s *LinkService) LoadAll() []models.LinkItem {
	var links []models.LinkItem
	if s.store.Load(KeyLinks, &links) {
		return links
	}
	seeded := make([]models.LinkItem, len(models.DefaultLinks))
	copy(seeded, models.DefaultLinks)
	return seeded
}

// LinkInput is what the editor submits for a new link.
type LinkInput struct {
	Name        string           `json:"name"`
	URL         string           `json:"url"`
	Description string           `json:"description"`
	Style       models.LinkStyle `json:"style"`
}

// Create appends a new link with a fresh id and persists the full list.
func (s *LinkService) Create(input LinkInput) models.LinkItem {
	link := models.LinkItem{
		ID:          uuid.NewString(),
		Name:        input.Name,
		URL:         input.URL,
		Description: input.Description,
		Style:       input.Style,
	}
	links := append(s.LoadAll(), link)
	s.store.Save(KeyLinks, links)
	s.log.Info("link created", zap.String("id", link.ID), zap.String("name", link.Name))
	return link
}

// LinkPatch carries optional edits; nil fields are left untouched.
type LinkPatch struct {
	Name        *string           `json:"name"`
	URL         *string           `json:"url"`
	Description *string           `json:"description"`
	Style       *models.LinkStyle `json:"style"`
}

// Update merges the patch into the matching record and persists the list.
// The second return is false when no link has that id.
func (s *LinkService) Update(id string, patch LinkPatch) (models.LinkItem, bool) {
	links := s.LoadAll()
	for i := range links {
		if links[i].ID != id {
			continue
		}
		if patch.Name != nil {
			links[i].Name = *patch.Name
		}
		if patch.URL != nil {
			links[i].URL = *patch.URL
		}
		if patch.Description != nil {
			links[i].Description = *patch.Description
		}
		if patch.Style != nil {
			links[i].Style = *patch.Style
		}
		s.store.Save(KeyLinks, links)
		return links[i], true
	}
	return models.LinkItem{}, false
}

// Get returns the link with the given id.
func (s *LinkService) Get(id string) (models.LinkItem, bool) {
	for _, link := range s.LoadAll() {
		if link.ID == id {
			return link, true
		}
	}
	return models.LinkItem{}, false
}

// Delete removes the matching record. Deleting an absent id is a no-op,
// not an error.
func (s *LinkService) Delete(id string) {
	links := s.LoadAll()
	kept := links[:0]
	for _, link := range links {
		if link.ID != id {
			kept = append(kept, link)
		}
	}
	s.store.Save(KeyLinks, kept)
}

// UpdateStyle patches only the style sub-object.
func (s *LinkService) UpdateStyle(id string, style models.LinkStyle) (models.LinkItem, bool) {
	return s.Update(id, LinkPatch{Style: &style})
}
