package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaviconURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/s2/favicons?domain=github.com&sz=32",
		FaviconURL("https://github.com/some/repo"),
	)
	// unparseable input falls back to a default icon, never errors
	assert.Equal(t,
		"https://www.google.com/s2/favicons?domain=example.com&sz=32",
		FaviconURL("::::not a url"),
	)
}

func TestHighQualityFaviconURL(t *testing.T) {
	assert.Equal(t, "https://google.com/favicon.ico", HighQualityFaviconURL("https://google.com"))
	assert.Equal(t,
		"https://www.google.com/s2/favicons?domain=example.com&sz=32",
		HighQualityFaviconURL("::::not a url"),
	)
}
