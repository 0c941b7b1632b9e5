package gdocs

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/docs/v1"
)

type FetchResult struct {
	DocumentID string
	Title      string
	RevisionID string
	Text       string
}

// Fetch reads a document back and reassembles its plain body text from
// the structural elements' text runs.
func Fetch(ctx context.Context, c *Client, docID string) (*FetchResult, error) {
	doc, err := c.Docs.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	return &FetchResult{
		DocumentID: doc.DocumentId,
		Title:      doc.Title,
		RevisionID: doc.RevisionId,
		Text:       bodyText(doc),
	}, nil
}

func bodyText(doc *docs.Document) string {
	if doc.Body == nil {
		return ""
	}
	var sb strings.Builder
	for _, el := range doc.Body.Content {
		if el.Paragraph == nil {
			continue
		}
		for _, pe := range el.Paragraph.Elements {
			if pe.TextRun != nil {
				sb.WriteString(pe.TextRun.Content)
			}
		}
	}
	return sb.String()
}
