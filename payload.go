// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import (
	"fmt"
	"net/url"
)

// Platform and Version identify this client implementation in every
// request envelope.
const (
	Platform = "Go"
	Version  = "0.2.0"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://plot.ly"

// Fixed API paths: account creation and the shared plot/style/layout
// endpoint.
const (
	signupPath     = "/apimkacct"
	clientRespPath = "/clientresp"
)

// Origin tags accepted by the clientresp endpoint.
const (
	originPlot   = "plot"
	originStyle  = "style"
	originLayout = "layout"
	originSignup = "signup"
)

// buildPayload assembles the form envelope for a clientresp call.
//
// Per-call "un" and "key" keywords override the stored credentials and
// are always consumed, never serialized into the kwargs JSON; an empty
// override falls back to the stored credential like filename does.
// Filename and fileopt resolve truthy-or-default: an
// empty keyword value falls back to the client's stored default, matching
// the other clients of this API on the wire. The resolved pair is always
// present in kwargs. The data sequence and the remaining keyword mapping
// are serialized to JSON independently because the endpoint takes
// form-encoded string fields, not a JSON body.
func (c *Client) buildPayload(origin string, data []any, kwargs map[string]any) (url.Values, error) {
	kw := make(map[string]any, len(kwargs)+2)
	for k, v := range kwargs {
		kw[k] = v
	}

	username := c.username
	apiKey := c.apiKey
	if v, present := kw["un"]; present {
		if s, ok := truthyString(v); ok {
			username = s
		}
		delete(kw, "un")
	}
	if v, present := kw["key"]; present {
		if s, ok := truthyString(v); ok {
			apiKey = s
		}
		delete(kw, "key")
	}

	filename := c.filename
	if s, ok := truthyString(kw["filename"]); ok {
		filename = s
	}
	fileOpt := c.fileOpt
	if s, ok := truthyString(kw["fileopt"]); ok {
		fileOpt = s
	}
	kw["filename"] = filename
	kw["fileopt"] = fileOpt

	argsJSON, err := c.codec.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode args: %w", err)
	}
	kwargsJSON, err := c.codec.Marshal(kw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode kwargs: %w", err)
	}

	form := url.Values{}
	form.Set("platform", Platform)
	form.Set("version", Version)
	form.Set("un", username)
	form.Set("key", apiKey)
	form.Set("origin", origin)
	form.Set("args", string(argsJSON))
	form.Set("kwargs", string(kwargsJSON))
	return form, nil
}
