package gdocs

import (
	"context"
	"fmt"

	"github.com/Skuskusku13/app-google-auth/debug"

	"google.golang.org/api/docs/v1"
)

type ExportResult struct {
	DocumentID  string
	DocumentURL string
}

// Export creates a new document and applies the whole plan in a single
// batchUpdate call. The batch is atomic on the service side, so a
// rejected request leaves no half-formatted document behind; nothing is
// retried here.
func Export(ctx context.Context, c *Client, title string, plan *Plan) (*ExportResult, error) {
	doc, err := c.Docs.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	reqs := append(documentStyleRequests(), Requests(plan)...)

	debug.Log("Export: %d request(s) for document %s", len(reqs), doc.DocumentId)

	_, err = c.Docs.Documents.BatchUpdate(doc.DocumentId, &docs.BatchUpdateDocumentRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("batch update: %w", err)
	}

	return &ExportResult{
		DocumentID:  doc.DocumentId,
		DocumentURL: fmt.Sprintf("https://docs.google.com/document/d/%s/edit", doc.DocumentId),
	}, nil
}

// documentStyleRequests gives the fresh document reasonable 1-inch
// margins (72 points).
func documentStyleRequests() []*docs.Request {
	marginPt := &docs.Dimension{Magnitude: 72, Unit: "PT"}
	return []*docs.Request{{
		UpdateDocumentStyle: &docs.UpdateDocumentStyleRequest{
			DocumentStyle: &docs.DocumentStyle{
				MarginTop:    marginPt,
				MarginBottom: marginPt,
				MarginLeft:   marginPt,
				MarginRight:  marginPt,
			},
			Fields: "marginTop,marginBottom,marginLeft,marginRight",
		},
	}}
}
