package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EntryDir returns the directory for entries created at t, creating
// root/YYYY/MM (and any missing ancestors) if needed. Safe to call when the
// directory already exists.
func EntryDir(root string, t time.Time) (string, error) {
	dir := filepath.Join(root, t.Format("2006"), t.Format("01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

// Filename builds the entry filename for a creation time and title:
// dd-HHMMSS-title.md. The title may carry a .md suffix; it is stripped
// before sanitizing and re-added.
func Filename(t time.Time, title string) string {
	base := SanitizeTitle(strings.TrimSuffix(title, ".md"))
	return t.Format("02-150405") + "-" + base + ".md"
}

// SanitizeTitle replaces characters that are unsafe in filenames with
// hyphens, collapses hyphen runs, and trims a trailing hyphen.
// "my/note: about something?" -> "my-note-about-something"
func SanitizeTitle(title string) string {
	safe := unsafeChars.Replace(title)

	for strings.Contains(safe, "--") {
		safe = strings.ReplaceAll(safe, "--", "-")
	}

	return strings.TrimSuffix(safe, "-")
}

var unsafeChars = strings.NewReplacer(
	" ", "-",
	"/", "-",
	"\\", "-",
	":", "-",
	"?", "-",
	"*", "-",
	"\"", "-",
	"'", "-",
	"<", "-",
	">", "-",
	"|", "-",
)
