// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

/*
Package plotpost is a client for the plot.ly v1 REST API.

The API accepts form-encoded POST requests on two fixed endpoints
(/clientresp for plot, style and layout calls, /apimkacct for account
signup) and answers with a small JSON envelope carrying the plot URL,
the server-side filename and optional message, warning and error fields.

Key Components:

  - Client: credentials, per-plot defaults and the filename memo used to
    chain style/layout calls onto a previous plot
  - Argument splitter: partitions a mixed positional-then-keyword call
    into the data series and the option mapping
  - Codec: explicit JSON serialization configuration (canonical key
    order, HTML escaping, UTF-8 normalization)
  - NDArray: shaped numeric array that serializes as plain nested
    sequences of numbers

Calls follow the data-then-keyword convention shared by the other
clients of this API: leading compound arguments (slices, maps, NDArray
values) form the data series, and the first plain scalar starts a flat
key/value option list.

	client, err := plotpost.New("username", "api-key")
	if err != nil {
	    log.Fatal(err)
	}

	x := []float64{0, 1, 2, 3}
	y := []float64{10, 15, 13, 17}
	resp, err := client.Plot(ctx, x, y, "filename", "my-plot", "fileopt", "overwrite")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(resp.URL)

	// Reuses "my-plot" through the filename memo.
	_, err = client.Style(ctx, []any{map[string]any{"type": "scatter"}})

Server-reported errors abort the call with an *APIError; warnings are
logged unconditionally; informational messages are printed only while
the client is verbose (the default).

Thread Safety: a Client is intended for sequential use. The filename
memo is mutated by successful calls and is not synchronized; wrap the
client in external locking if it must be shared across goroutines.
*/
package plotpost
