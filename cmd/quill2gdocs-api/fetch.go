package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/Skuskusku13/app-google-auth/config"
	"github.com/Skuskusku13/app-google-auth/gdocs"
)

type fetchRequest struct {
	DocumentID string `json:"document_id"`
}

func handleFetch(ctx context.Context, cfg *config.Config, data json.RawMessage) int {
	var req fetchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		_ = writeErrorResult(os.Stdout, errCodeInvalidRequest, "invalid fetch request", err)
		return 1
	}
	if strings.TrimSpace(req.DocumentID) == "" {
		_ = writeErrorResult(os.Stdout, errCodeInvalidRequest, "missing document_id", nil)
		return 1
	}

	client, err := gdocs.NewClient(ctx, cfg)
	if err != nil {
		_ = writeErrorResult(os.Stdout, errCodeAuthError, "failed to authenticate", err)
		return 1
	}

	result, err := gdocs.Fetch(ctx, client, req.DocumentID)
	if err != nil {
		_ = writeErrorResult(os.Stdout, errCodeSinkError, "fetch failed", err)
		return 1
	}

	if err := writeSuccessResult(os.Stdout, map[string]any{
		"document_id": result.DocumentID,
		"title":       result.Title,
		"revision_id": result.RevisionID,
		"text":        result.Text,
	}); err != nil {
		_ = writeErrorResult(os.Stdout, errCodeInternalError, "failed to write response", err)
		return 1
	}
	return 0
}
