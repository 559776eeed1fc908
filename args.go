// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import "fmt"

// splitArgs partitions a Plot/Style/Layout argument list into its leading
// data sequence and trailing keyword mapping.
//
// Leading compound values (slices, maps, NDArray) are slurped as data. The
// first plain scalar ends the data portion; it and everything after it form
// a flat key/value keyword list. This mirrors the calling convention of the
// other clients of this API: (series1, series2, "key", value, ...) and a
// single array-of-arrays data argument are both accepted.
//
// Classification runs over a closed set of supported shapes rather than
// open-ended reflection; an argument outside the set fails the call before
// any network I/O.
func splitArgs(args []any) ([]any, map[string]any, error) {
	data := make([]any, 0, len(args))

	i := 0
	for ; i < len(args); i++ {
		compound, err := isCompound(args[i])
		if err != nil {
			return nil, nil, fmt.Errorf("argument %d: %w", i, err)
		}
		if !compound {
			break
		}
		data = append(data, args[i])
	}

	kwargs := make(map[string]any)
	rest := args[i:]
	if len(rest)%2 != 0 {
		return nil, nil, fmt.Errorf("keyword arguments must form key/value pairs, got dangling value after %d pairs", len(rest)/2)
	}
	for j := 0; j < len(rest); j += 2 {
		key, ok := rest[j].(string)
		if !ok {
			return nil, nil, fmt.Errorf("keyword key at argument %d must be a string, got %T", i+j, rest[j])
		}
		kwargs[key] = rest[j+1]
	}

	return data, kwargs, nil
}

// isCompound classifies a single argument. Compound values continue the
// data sequence; scalars start the keyword list; anything else is an error.
func isCompound(v any) (bool, error) {
	switch v.(type) {
	case []any, []string, []float64, []int, [][]float64, [][]any,
		map[string]any, *NDArray:
		return true, nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return false, nil
	default:
		return false, fmt.Errorf("unsupported argument type %T", v)
	}
}
