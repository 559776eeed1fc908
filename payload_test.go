// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func decodeKwargs(t *testing.T, encoded string) map[string]any {
	t.Helper()
	var kwargs map[string]any
	if err := json.Unmarshal([]byte(encoded), &kwargs); err != nil {
		t.Fatalf("kwargs field is not valid JSON: %v", err)
	}
	return kwargs
}

func TestBuildPayloadEnvelope(t *testing.T) {
	t.Parallel()

	c := newClient("alice", "secret")
	data := []any{[]float64{1, 2, 3, 4}, []float64{10, 15, 13, 17}}

	form, err := c.buildPayload(originPlot, data, map[string]any{})
	if err != nil {
		t.Fatalf("buildPayload() error = %v", err)
	}

	if got := form.Get("platform"); got != Platform {
		t.Errorf("platform = %q, want %q", got, Platform)
	}
	if got := form.Get("version"); got != Version {
		t.Errorf("version = %q, want %q", got, Version)
	}
	if got := form.Get("origin"); got != "plot" {
		t.Errorf("origin = %q, want plot", got)
	}
	if got := form.Get("un"); got != "alice" {
		t.Errorf("un = %q, want alice", got)
	}
	if got := form.Get("key"); got != "secret" {
		t.Errorf("key = %q, want secret", got)
	}

	var decoded [][]float64
	if err := json.Unmarshal([]byte(form.Get("args")), &decoded); err != nil {
		t.Fatalf("args field is not valid JSON: %v", err)
	}
	want := [][]float64{{1, 2, 3, 4}, {10, 15, 13, 17}}
	if !reflect.DeepEqual(decoded, want) {
		t.Errorf("args decode = %v, want %v", decoded, want)
	}
}

func TestBuildPayloadCredentialOverrides(t *testing.T) {
	t.Parallel()

	c := newClient("alice", "secret")
	form, err := c.buildPayload(originPlot, nil, map[string]any{
		"un":  "bob",
		"key": "other-key",
	})
	if err != nil {
		t.Fatalf("buildPayload() error = %v", err)
	}

	if got := form.Get("un"); got != "bob" {
		t.Errorf("un = %q, want bob", got)
	}
	if got := form.Get("key"); got != "other-key" {
		t.Errorf("key = %q, want other-key", got)
	}

	// Overrides are consumed: they must not leak into the kwargs JSON.
	kwargs := decodeKwargs(t, form.Get("kwargs"))
	if _, ok := kwargs["un"]; ok {
		t.Error("kwargs still contains un")
	}
	if _, ok := kwargs["key"]; ok {
		t.Error("kwargs still contains key")
	}
}

func TestBuildPayloadEmptyCredentialOverride(t *testing.T) {
	t.Parallel()

	c := newClient("alice", "secret")
	form, err := c.buildPayload(originPlot, nil, map[string]any{
		"un":  "",
		"key": "",
	})
	if err != nil {
		t.Fatalf("buildPayload() error = %v", err)
	}

	// Empty overrides fall back to the stored credentials...
	if got := form.Get("un"); got != "alice" {
		t.Errorf("un = %q, want alice", got)
	}
	if got := form.Get("key"); got != "secret" {
		t.Errorf("key = %q, want secret", got)
	}

	// ...and are still consumed, never serialized into the kwargs JSON.
	kwargs := decodeKwargs(t, form.Get("kwargs"))
	if _, ok := kwargs["un"]; ok {
		t.Error("kwargs still contains un")
	}
	if _, ok := kwargs["key"]; ok {
		t.Error("kwargs still contains key")
	}
}

func TestBuildPayloadFilenameResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		stored       string
		storedOpt    string
		kwargs       map[string]any
		wantFilename string
		wantFileOpt  string
	}{
		{
			name:         "keyword wins over stored default",
			stored:       "old-plot",
			kwargs:       map[string]any{"filename": "new-plot"},
			wantFilename: "new-plot",
		},
		{
			name:         "stored default used when keyword absent",
			stored:       "old-plot",
			storedOpt:    "extend",
			kwargs:       map[string]any{},
			wantFilename: "old-plot",
			wantFileOpt:  "extend",
		},
		{
			// Truthy fallback: an explicitly empty keyword falls back to
			// the stored default, matching the other clients on the wire.
			name:         "empty keyword falls back to stored default",
			stored:       "old-plot",
			kwargs:       map[string]any{"filename": ""},
			wantFilename: "old-plot",
		},
		{
			name:         "no keyword and no default yields empty fields",
			kwargs:       map[string]any{},
			wantFilename: "",
			wantFileOpt:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newClient("alice", "secret", WithFilename(tt.stored), WithFileOpt(tt.storedOpt))
			form, err := c.buildPayload(originStyle, nil, tt.kwargs)
			if err != nil {
				t.Fatalf("buildPayload() error = %v", err)
			}

			kwargs := decodeKwargs(t, form.Get("kwargs"))
			if got, ok := kwargs["filename"]; !ok {
				t.Error("kwargs missing filename")
			} else if got != tt.wantFilename {
				t.Errorf("kwargs.filename = %v, want %q", got, tt.wantFilename)
			}
			if got, ok := kwargs["fileopt"]; !ok {
				t.Error("kwargs missing fileopt")
			} else if got != tt.wantFileOpt {
				t.Errorf("kwargs.fileopt = %v, want %q", got, tt.wantFileOpt)
			}
		})
	}
}

func TestBuildPayloadKeepsCallerKwargs(t *testing.T) {
	t.Parallel()

	c := newClient("alice", "secret")
	caller := map[string]any{"world_readable": true}
	form, err := c.buildPayload(originPlot, nil, caller)
	if err != nil {
		t.Fatalf("buildPayload() error = %v", err)
	}

	kwargs := decodeKwargs(t, form.Get("kwargs"))
	if got := kwargs["world_readable"]; got != true {
		t.Errorf("kwargs.world_readable = %v, want true", got)
	}

	// The caller's map must not be mutated by resolution.
	if _, ok := caller["filename"]; ok {
		t.Error("buildPayload mutated the caller's kwargs map")
	}
}
