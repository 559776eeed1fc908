// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// poster sends one form-encoded POST and decodes the JSON response body.
// Implemented by transport and by breakerTransport when the circuit
// breaker is enabled.
type poster interface {
	postForm(ctx context.Context, path string, form url.Values) (map[string]any, error)
}

// transport performs the single HTTP round trip behind every API call.
// An optional rate limiter paces outgoing requests; waits honor the call
// context. There are no retries: any failure aborts the call.
type transport struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

func (t *transport) postForm(ctx context.Context, path string, form url.Values) (map[string]any, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait canceled: %w", err)
		}
	}

	reqURL := t.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	t.logger.Debug().Str("url", reqURL).Str("origin", form.Get("origin")).Msg("posting API request")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body := readBodyForError(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	t.logger.Debug().Int("status", resp.StatusCode).Int("fields", len(decoded)).Msg("decoded API response")
	return decoded, nil
}
