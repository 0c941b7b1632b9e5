package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/Skuskusku13/app-google-auth/config"
	"github.com/Skuskusku13/app-google-auth/debug"
	"github.com/Skuskusku13/app-google-auth/delta"
	"github.com/Skuskusku13/app-google-auth/gdocs"
)

type exportRequest struct {
	Title string          `json:"title"`
	Delta json.RawMessage `json:"delta"`
	HTML  string          `json:"html"`
}

var errNoUsableContent = errors.New("neither delta nor html produced any content")

func handleExport(ctx context.Context, cfg *config.Config, data json.RawMessage) int {
	var req exportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		_ = writeErrorResult(os.Stdout, errCodeInvalidRequest, "invalid export request", err)
		return 1
	}
	if strings.TrimSpace(req.Title) == "" {
		_ = writeErrorResult(os.Stdout, errCodeInvalidRequest, "missing title", nil)
		return 1
	}

	plan, err := buildPlan(req)
	if err != nil {
		_ = writeErrorResult(os.Stdout, errCodeInvalidContent, "no exportable content", err)
		return 1
	}

	client, err := gdocs.NewClient(ctx, cfg)
	if err != nil {
		_ = writeErrorResult(os.Stdout, errCodeAuthError, "failed to authenticate", err)
		return 1
	}

	result, err := gdocs.Export(ctx, client, req.Title, plan)
	if err != nil {
		_ = writeErrorResult(os.Stdout, errCodeSinkError, "export failed", err)
		return 1
	}

	if err := writeSuccessResult(os.Stdout, map[string]any{
		"document_id":  result.DocumentID,
		"document_url": result.DocumentURL,
	}); err != nil {
		_ = writeErrorResult(os.Stdout, errCodeInternalError, "failed to write response", err)
		return 1
	}
	return 0
}

// buildPlan compiles the delta source, falling back to the HTML
// rendering when the delta is absent, malformed or empty. The fallback
// is best-effort salvage, so its failures are not reported separately.
func buildPlan(req exportRequest) (*gdocs.Plan, error) {
	if len(req.Delta) > 0 {
		ops, err := delta.ParseOps(string(req.Delta))
		if err == nil {
			plan, cerr := gdocs.Compile(ops)
			if cerr == nil {
				return plan, nil
			}
			err = cerr
		}
		debug.Log("Delta source unusable, trying HTML fallback: %v", err)
	}

	if strings.TrimSpace(req.HTML) != "" {
		plan := gdocs.CompileHTML(req.HTML)
		if plan.FullText != "" {
			return plan, nil
		}
	}

	return nil, errNoUsableContent
}
