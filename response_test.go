// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import "testing"

func TestTruthyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		value      any
		want       string
		wantTruthy bool
	}{
		{name: "absent key", value: nil, want: "", wantTruthy: false},
		{name: "empty string", value: "", want: "", wantTruthy: false},
		{name: "non-empty string", value: "plot-1", want: "plot-1", wantTruthy: true},
		{name: "false", value: false, want: "", wantTruthy: false},
		{name: "true", value: true, want: "true", wantTruthy: true},
		{name: "zero number", value: float64(0), want: "", wantTruthy: false},
		{name: "non-zero number", value: float64(3), want: "3", wantTruthy: true},
		{name: "other value", value: []any{"x"}, want: "[x]", wantTruthy: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, truthy := truthyString(tt.value)
			if truthy != tt.wantTruthy {
				t.Errorf("truthy = %v, want %v", truthy, tt.wantTruthy)
			}
			if got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewResponseFields(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"url":      "http://x/1",
		"filename": "plot-1",
		"message":  "hi",
		"warning":  "careful",
		"api_key":  "k",
		"tmp_pw":   "p",
		"extra":    "kept in raw",
	}
	resp := newResponse(raw)

	if resp.URL != "http://x/1" || resp.Filename != "plot-1" {
		t.Errorf("URL/Filename = %q/%q", resp.URL, resp.Filename)
	}
	if resp.Message != "hi" || resp.Warning != "careful" {
		t.Errorf("Message/Warning = %q/%q", resp.Message, resp.Warning)
	}
	if resp.APIKey != "k" || resp.TempPassword != "p" {
		t.Errorf("APIKey/TempPassword = %q/%q", resp.APIKey, resp.TempPassword)
	}
	if resp.Error != "" {
		t.Errorf("Error = %q, want empty", resp.Error)
	}
	if resp.Raw["extra"] != "kept in raw" {
		t.Error("Raw mapping not preserved")
	}
}

func TestNewResponseFalsyError(t *testing.T) {
	t.Parallel()

	// A JSON false error field is falsy, not the string "false".
	resp := newResponse(map[string]any{"error": false, "url": "http://x/1"})
	if resp.Error != "" {
		t.Errorf("Error = %q, want empty for false", resp.Error)
	}
}
