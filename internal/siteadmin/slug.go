package siteadmin

import (
	"regexp"
	"strings"
)

var (
	slugStripRE    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRE    = regexp.MustCompile(`\s+`)
	slugCollapseRE = regexp.MustCompile(`-+`)
	htmlTagRE      = regexp.MustCompile(`<[^>]*>`)
)

const excerptLength = 150

// Slugify turns a title into a URL slug: lowercase, strip everything but
// letters, digits, spaces and dashes, then join words with single dashes.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = slugStripRE.ReplaceAllString(slug, "")
	slug = slugSpaceRE.ReplaceAllString(slug, "-")
	slug = slugCollapseRE.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Excerpt derives a short teaser from HTML content: tags stripped, cut at
// 150 characters with an ellipsis.
func Excerpt(content string) string {
	plain := strings.TrimSpace(htmlTagRE.ReplaceAllString(content, ""))

	runes := []rune(plain)
	if len(runes) <= excerptLength {
		return plain
	}

	return string(runes[:excerptLength]) + "..."
}
