package journal

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrBadTitle is returned by Create when the title doesn't end in .md.
var ErrBadTitle = errors.New(`title must end with ".md"`)

// dateLineFormat renders the embedded date line as DD-MM-YYYY.
const dateLineFormat = "02-01-2006"

// Create writes a new entry under root for the given creation time and
// returns its path. The filename day and the Date line in the body are
// derived from the same clock reading, so they always denote the same
// calendar day. If an entry with the same filename already exists the
// create fails; nothing is overwritten.
func Create(root, title, body string, tags []string, now time.Time) (string, error) {
	if filepath.Ext(title) != ".md" {
		return "", ErrBadTitle
	}

	dir, err := EntryDir(root, now)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(now, title))

	content, err := renderEntry(title, body, tags, now)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("entry %s already exists", filepath.Base(path))
		}
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// renderEntry builds the file body: optional YAML frontmatter, an H1 from
// the title, the Date line, then the note text.
func renderEntry(title, body string, tags []string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	if len(tags) > 0 {
		frontmatter := struct {
			Tags []string `yaml:"tags"`
		}{Tags: tags}

		yamlBytes, err := yaml.Marshal(frontmatter)
		if err != nil {
			return nil, err
		}

		buf.WriteString("---\n")
		buf.Write(yamlBytes)
		buf.WriteString("---\n\n")
	}

	heading := title[:len(title)-len(".md")]
	fmt.Fprintf(&buf, "# %s\n\nDate: %s\n\n%s\n", heading, now.Format(dateLineFormat), body)

	return buf.Bytes(), nil
}
