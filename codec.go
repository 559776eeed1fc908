// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Codec is the JSON serialization configuration used for the args and
// kwargs envelope fields. The options are explicit rather than process
// global state:
//
//   - CanonicalKeys: sort mapping keys for deterministic output
//   - ForceUTF8: normalize invalid UTF-8 byte sequences during encoding
//   - EscapeHTML: escape <, > and & inside strings
//
// The zero value disables everything; use DefaultCodec for the settings
// the envelope is normally produced with.
type Codec struct {
	CanonicalKeys bool
	ForceUTF8     bool
	EscapeHTML    bool
}

// DefaultCodec returns the codec configuration used unless overridden:
// canonical key order, UTF-8 normalization, no HTML escaping.
func DefaultCodec() *Codec {
	return &Codec{
		CanonicalKeys: true,
		ForceUTF8:     true,
		EscapeHTML:    false,
	}
}

// Marshal serializes v to JSON text after converting any NDArray values
// (at any nesting depth) to plain nested sequences of numbers.
func (c *Codec) Marshal(v any) ([]byte, error) {
	var opts []json.EncodeOptionFunc
	if !c.CanonicalKeys {
		opts = append(opts, json.UnorderedMap())
	}
	if !c.ForceUTF8 {
		opts = append(opts, json.DisableNormalizeUTF8())
	}
	if !c.EscapeHTML {
		opts = append(opts, json.DisableHTMLEscape())
	}

	out, err := json.MarshalWithOption(normalize(v), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload field: %w", err)
	}
	return out, nil
}

// normalize rewrites the closed set of container shapes the splitter
// admits, replacing NDArray values with their nested plain form. Values
// outside the set pass through untouched for the encoder to handle.
func normalize(v any) any {
	switch t := v.(type) {
	case *NDArray:
		return t.Nested()
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = normalize(elem)
		}
		return out
	case [][]any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = normalize(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = normalize(elem)
		}
		return out
	default:
		return v
	}
}
