// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import (
	"fmt"
	"io"
)

// APIError is a server-reported failure: the decoded response carried a
// truthy "error" field. Message holds the server's value verbatim.
type APIError struct {
	Origin  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: server returned error: %s", e.Origin, e.Message)
}

// StatusError reports a non-success HTTP status from the API. Body holds
// up to maxErrorBodySize bytes of the raw response for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// maxErrorBodySize limits how much of a failed response body is read for
// error reporting, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
