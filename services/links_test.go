package services

import (
	"testing"

	"link-organizer-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLinkService(t *testing.T) (*LinkService, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore(zap.NewNop())
	return NewLinkService(store, zap.NewNop()), store
}

func TestLoadAllReturnsSeedWithoutPersisting(t *testing.T) {
	svc, store := newLinkService(t)

	links := svc.LoadAll()
	require.Len(t, links, 2)
	assert.Equal(t, "Google", links[0].Name)

	_, stored := store.LoadRaw(KeyLinks)
	assert.False(t, stored, "seed data must not be persisted until the first mutation")
}

func TestCreatePersistsAndAssignsID(t *testing.T) {
	svc, store := newLinkService(t)

	link := svc.Create(LinkInput{
		Name: "Blog",
		URL:  "https://example.com",
		Style: models.LinkStyle{
			BorderColor: "#111111",
			BorderWidth: 2,
			BorderStyle: models.BorderSolid,
		},
	})
	assert.NotEmpty(t, link.ID)

	var stored []models.LinkItem
	require.True(t, store.Load(KeyLinks, &stored))
	require.Len(t, stored, 3) // seed became real on first mutation
	assert.Equal(t, link, stored[2])

	second := svc.Create(LinkInput{Name: "Docs", URL: "https://docs.example.com"})
	assert.NotEqual(t, link.ID, second.ID)
}

func TestUpdatePatchesFields(t *testing.T) {
	svc, _ := newLinkService(t)
	link := svc.Create(LinkInput{Name: "Blog", URL: "https://example.com"})

	desc := "appunti personali"
	updated, ok := svc.Update(link.ID, LinkPatch{Description: &desc})
	require.True(t, ok)
	assert.Equal(t, desc, updated.Description)
	assert.Equal(t, "Blog", updated.Name)

	got, ok := svc.Get(link.ID)
	require.True(t, ok)
	assert.Equal(t, updated, got)

	_, ok = svc.Update("missing", LinkPatch{Description: &desc})
	assert.False(t, ok)
}

func TestUpdateStylePatchesOnlyStyle(t *testing.T) {
	svc, _ := newLinkService(t)
	link := svc.Create(LinkInput{Name: "Blog", URL: "https://example.com", Description: "desc"})

	style := models.LinkStyle{
		BorderColor: "#ff0000",
		BorderWidth: 4,
		BorderStyle: models.BorderDotted,
		Outline:     models.OutlineBronzo,
	}
	updated, ok := svc.UpdateStyle(link.ID, style)
	require.True(t, ok)
	assert.Equal(t, style, updated.Style)
	assert.Equal(t, "desc", updated.Description)
}

func TestDeleteIsNoOpWhenAbsent(t *testing.T) {
	svc, _ := newLinkService(t)
	link := svc.Create(LinkInput{Name: "Blog", URL: "https://example.com"})

	svc.Delete(link.ID)
	_, ok := svc.Get(link.ID)
	assert.False(t, ok)

	before := len(svc.LoadAll())
	svc.Delete("not-there")
	assert.Len(t, svc.LoadAll(), before)
}
