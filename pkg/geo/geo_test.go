// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turathdz/turath/pkg/geo"
)

/*
TestDistance_ZeroDistance ensures a point compared with itself never yields
NaN from acos-domain drift.
*/
func TestDistance_ZeroDistance(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"algiers", 36.75, 3.05},
		{"equator_origin", 0, 0},
		{"high_latitude", 89.9, -120.3},
		{"negative_coords", -33.6, -70.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := geo.Distance(tt.lat, tt.lon, tt.lat, tt.lon)

			assert.False(t, math.IsNaN(d), "distance must never be NaN")
			assert.InDelta(t, 0, d, 1e-3)
		})
	}
}

/*
TestDistance_KnownPairs checks computed distances against reference values.
*/
func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expectedKm float64
		toleranceKm float64
	}{
		// Algiers centre to Tipaza (~60km west along the coast).
		{"algiers_tipaza", 36.7538, 3.0588, 36.5897, 2.4474, 57, 5},
		// Algiers to Oran.
		{"algiers_oran", 36.7538, 3.0588, 35.6971, -0.6308, 355, 15},
		// One degree of latitude along a meridian is ~111.2 km.
		{"one_degree_latitude", 0, 0, 1, 0, 111.2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := geo.Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expectedKm, d, tt.toleranceKm)
		})
	}
}

/*
TestDistance_Symmetry verifies distance(a,b) == distance(b,a).
*/
func TestDistance_Symmetry(t *testing.T) {
	ab := geo.Distance(36.75, 3.05, 35.69, -0.63)
	ba := geo.Distance(35.69, -0.63, 36.75, 3.05)

	assert.InDelta(t, ab, ba, 1e-9)
}
