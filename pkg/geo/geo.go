// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

/*
Package geo provides great-circle distance math for proximity queries.

It implements the spherical law of cosines variant of the Haversine
computation used by the heritage discovery endpoints. Distances are always
computed at query time because the reference point and radius vary per
request; nothing here is cached or precomputed.
*/
package geo

import "math"

// EarthRadiusKm is the mean spherical Earth radius used for all
// great-circle distance calculations.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between two
// WGS84 coordinates expressed in decimal degrees.
//
// # Formula
//
//	acos(cos(lat1)·cos(lat2)·cos(lon2−lon1) + sin(lat1)·sin(lat2)) · R
//
// # Floating-Point Safety
//
// When the two points coincide, rounding can push the acos argument
// marginally above 1.0, which would yield NaN. The argument is therefore
// clamped to the [-1, 1] domain before taking the arccosine, so a candidate
// at distance zero is always a valid, included result.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := radians(lat1)
	φ2 := radians(lat2)
	Δλ := radians(lon2 - lon1)

	arg := math.Cos(φ1)*math.Cos(φ2)*math.Cos(Δλ) + math.Sin(φ1)*math.Sin(φ2)

	return math.Acos(clamp(arg, -1, 1)) * EarthRadiusKm
}

// radians converts decimal degrees to radians.
func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// clamp bounds v to the [low, high] interval.
func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
