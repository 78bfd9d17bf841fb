package jira

import "strings"

// makeADFDocument wraps plain text in a minimal ADF document suitable for
// the worklog comment field. Blank-line separated blocks become paragraphs.
func makeADFDocument(text string) map[string]any {
	paragraphs := strings.Split(text, "\n\n")
	content := make([]any, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		content = append(content, map[string]any{
			"type": "paragraph",
			"content": []any{
				map[string]any{
					"type": "text",
					"text": p,
				},
			},
		})
	}
	return map[string]any{
		"version": 1,
		"type":    "doc",
		"content": content,
	}
}
