// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

// Package query parses repeated and comma-separated URL query parameters
// into typed slices for the faceted list endpoints.
package query

import (
	"strconv"
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Float parses a single float query value. The second return reports
// whether the value was present and well-formed — facets that are absent
// must be omitted from filters, never defaulted.
func Float(val string) (float64, bool) {
	if val == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses a single integer query value, reporting presence like [Float].
func Int(val string) (int, bool) {
	if val == "" {
		return 0, false
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return i, true
}
