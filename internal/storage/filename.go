package storage

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// HTMLFileName builds the object key for a blog body: unix timestamp plus
// the slugified title, e.g. "1717171717-my-first-post.html".
func HTMLFileName(title string, now time.Time) string {
	return fmt.Sprintf("%d-%s.html", now.Unix(), Slugify(title))
}

// Slugify lowercases the title and collapses anything that is not a letter
// or digit into single dashes.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
