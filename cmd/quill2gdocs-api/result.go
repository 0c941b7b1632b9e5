package main

import (
	"encoding/json"
	"io"
	"time"
)

type errorCode string

const (
	errCodeParseError     errorCode = "parse_error"
	errCodeInvalidRequest errorCode = "invalid_request"
	errCodeInvalidContent errorCode = "invalid_content"
	errCodeAuthError      errorCode = "auth_error"
	errCodeConfigError    errorCode = "config_error"
	errCodeSinkError      errorCode = "sink_error"
	errCodeInternalError  errorCode = "internal_error"
)

// resultEnvelope is the single JSON object written to stdout for every
// invocation, success or failure.
type resultEnvelope struct {
	Result    string         `json:"result"`
	Code      errorCode      `json:"code,omitempty"`
	Message   string         `json:"message,omitempty"`
	Details   string         `json:"details,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp string         `json:"timestamp"`
}

func writeResult(w io.Writer, env resultEnvelope) error {
	env.Timestamp = time.Now().UTC().Format(time.RFC3339)

	out, err := json.Marshal(env)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func writeErrorResult(w io.Writer, code errorCode, message string, details error) error {
	env := resultEnvelope{
		Result:  "error",
		Code:    code,
		Message: message,
	}
	if details != nil {
		env.Details = details.Error()
	}
	return writeResult(w, env)
}

func writeSuccessResult(w io.Writer, data map[string]any) error {
	return writeResult(w, resultEnvelope{
		Result: "success",
		Data:   data,
	})
}
