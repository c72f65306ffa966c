package journal

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// extractTitle returns the first level-1 heading in the markdown body, or
// "" if there is none.
func extractTitle(markdown string) string {
	reader := text.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				title = string(n.Text([]byte(markdown)))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	return title
}

// extractPreview returns the first couple of paragraphs of the body,
// skipping headings, truncated to a displayable length.
func extractPreview(markdown string) string {
	reader := text.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var preview strings.Builder
	paragraphs := 0
	maxParagraphs := 2

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if n.Kind() == ast.KindHeading {
			return ast.WalkSkipChildren, nil
		}

		if n.Kind() == ast.KindParagraph {
			if paragraphs >= maxParagraphs {
				return ast.WalkStop, nil
			}

			text := string(n.Text([]byte(markdown)))
			if text != "" {
				if preview.Len() > 0 {
					preview.WriteString(" ")
				}
				preview.WriteString(text)
				paragraphs++
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	previewText := preview.String()
	if len(previewText) > 60 {
		previewText = previewText[:57] + "..."
	}

	return previewText
}

// Preview returns a short plain-text summary of the entry body. The Date
// line is dropped first so the preview shows actual note text.
func (e Entry) Preview() string {
	return extractPreview(dateLinePattern.ReplaceAllString(e.Body, ""))
}
