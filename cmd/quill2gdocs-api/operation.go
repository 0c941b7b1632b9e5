package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Skuskusku13/app-google-auth/config"
	"github.com/Skuskusku13/app-google-auth/debug"
)

// request is the envelope read from stdin.
type request struct {
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
}

func handleOperation(cfg *config.Config) {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		_ = writeErrorResult(os.Stdout, errCodeInternalError, "failed reading stdin", err)
		os.Exit(1)
	}

	debug.LogJSON("IN", string(raw))

	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		_ = writeErrorResult(os.Stdout, errCodeParseError, "failed to parse request", err)
		os.Exit(1)
	}
	if req.Operation == "" {
		_ = writeErrorResult(os.Stdout, errCodeInvalidRequest, "missing operation", nil)
		os.Exit(1)
	}

	debug.Log("Operation: %s", req.Operation)

	switch req.Operation {
	case "export":
		os.Exit(handleExport(context.Background(), cfg, req.Data))
	case "fetch":
		os.Exit(handleFetch(context.Background(), cfg, req.Data))
	default:
		_ = writeErrorResult(os.Stdout, errCodeInvalidRequest, fmt.Sprintf("unknown operation: %s", req.Operation), nil)
		os.Exit(1)
	}
}
