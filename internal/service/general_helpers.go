package service

import "math"

// RoundingPrecision is the scaling factor used when rounding monetary
// values for persisted snapshots (two decimal places).
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places. Used when writing
// snapshot rows; live aggregation results are returned unrounded.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
