package utils

import (
	"fmt"
	"net/url"
)

// FaviconURL resolves a site URL to Google's favicon service URL.
// Unparseable input falls back to a default icon instead of erroring.
func FaviconURL(siteURL string) string {
	domain := hostOf(siteURL)
	if domain == "" {
		domain = "example.com"
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=32", domain)
}

// HighQualityFaviconURL points at the site's own favicon.ico, falling back to
// the favicon service when the URL cannot be parsed.
func HighQualityFaviconURL(siteURL string) string {
	domain := hostOf(siteURL)
	if domain == "" {
		return FaviconURL(siteURL)
	}
	return fmt.Sprintf("https://%s/favicon.ico", domain)
}

func hostOf(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return u.Hostname()
}
