// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import "fmt"

// Response is the decoded body of an API call. The well-known envelope
// fields are lifted into typed accessors; Raw keeps the full decoded
// mapping so callers can reach anything the server adds.
type Response struct {
	// URL of the rendered plot, when the call produced one.
	URL string

	// Filename identifying the plot on the server. A non-empty value is
	// memoized on the Client for subsequent Style/Layout calls.
	Filename string

	// Message is informational server output, printed when verbose.
	Message string

	// Warning is non-fatal server output, logged regardless of verbosity.
	Warning string

	// Error is the server-reported error value. Calls with a truthy error
	// abort before the Response is returned, so this is populated only on
	// the Response embedded in the *APIError path.
	Error string

	// APIKey and TempPassword are set on signup responses.
	APIKey       string
	TempPassword string

	// Raw is the full decoded response mapping.
	Raw map[string]any
}

func newResponse(raw map[string]any) *Response {
	resp := &Response{Raw: raw}
	resp.URL, _ = truthyString(raw["url"])
	resp.Filename, _ = truthyString(raw["filename"])
	resp.Message, _ = truthyString(raw["message"])
	resp.Warning, _ = truthyString(raw["warning"])
	resp.Error, _ = truthyString(raw["error"])
	resp.APIKey, _ = truthyString(raw["api_key"])
	resp.TempPassword, _ = truthyString(raw["tmp_pw"])
	return resp
}

// truthyString renders a response field as text and reports whether the
// value is truthy. Absent keys, nil, empty strings, false and numeric
// zero are all falsy, matching how the other clients of this API treat
// the envelope fields.
func truthyString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		if !t {
			return "", false
		}
		return "true", true
	case float64:
		if t == 0 {
			return "", false
		}
		return fmt.Sprint(t), true
	default:
		return fmt.Sprint(t), true
	}
}
