package services

import (
	"testing"

	"link-organizer-system/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()
	return NewSettingsService(NewMemoryStore(zap.NewNop()), zap.NewNop())
}

func TestPageTitleDefaultAndSet(t *testing.T) {
	svc := newSettingsService(t)

	assert.Equal(t, models.DefaultPageTitle, svc.PageTitle())

	svc.SetPageTitle("La mia bacheca")
	assert.Equal(t, "La mia bacheca", svc.PageTitle())
}

func TestBackgroundSelection(t *testing.T) {
	svc := newSettingsService(t)

	sel, custom := svc.Background()
	assert.Equal(t, 1, sel.ID)
	assert.Empty(t, custom)

	svc.SetBackground(7)
	sel, custom = svc.Background()
	assert.Equal(t, 7, sel.ID)
	assert.Empty(t, custom)
}

func TestCustomBackgroundUsesSentinel(t *testing.T) {
	svc := newSettingsService(t)

	svc.SetCustomBackground("data:image/png;base64,AAAA")
	sel, custom := svc.Background()
	assert.Equal(t, models.CustomBackgroundID, sel.ID)
	assert.Equal(t, "data:image/png;base64,AAAA", custom)

	// picking a built-in background again keeps the stored image but stops
	// returning it
	svc.SetBackground(2)
	sel, custom = svc.Background()
	assert.Equal(t, 2, sel.ID)
	assert.Empty(t, custom)
}

func TestFontDefaultAndSet(t *testing.T) {
	svc := newSettingsService(t)

	assert.Equal(t, models.DefaultFont, svc.Font().Family)

	svc.SetFont("Inter, sans-serif")
	assert.Equal(t, "Inter, sans-serif", svc.Font().Family)
}
