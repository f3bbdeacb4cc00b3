// Package scoring turns per-entity raw statistics into feature vectors,
// rescales them across the population and composes the impact score.
package scoring

// Range is a closed target interval for min-max scaling.
type Range struct {
	Min float64
	Max float64
}

// Target intervals used by the pipeline.
var (
	// FeatureRange holds the composite inputs.
	FeatureRange = Range{Min: 1, Max: 10}
	// AxisRange holds the standalone social and video sentiment axes.
	AxisRange = Range{Min: 0, Max: 10}
	// ScoreRange holds the final impact score.
	ScoreRange = Range{Min: 0, Max: 10}
)

// Midpoint is the value every member of a degenerate population gets.
func (r Range) Midpoint() float64 { return r.Min + (r.Max-r.Min)/2 }

// Contains reports whether v lies in the closed interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Valid reports whether the interval is non-empty.
func (r Range) Valid() bool { return r.Max > r.Min }

// Normalize min-max scales values onto r. The smallest value maps to r.Min,
// the largest to r.Max and the rest linearly in between. A population of
// one, or one where all values are equal, maps every member to the
// midpoint of r.
func Normalize(values []float64, r Range) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := bounds(values)
	if Degenerate(values) {
		mid := r.Midpoint()
		for i := range out {
			out[i] = mid
		}
		return out
	}
	span := hi - lo
	for i, v := range values {
		switch v {
		case lo:
			out[i] = r.Min
		case hi:
			out[i] = r.Max
		default:
			out[i] = r.Min + (v-lo)/span*(r.Max-r.Min)
		}
	}
	return out
}

// Degenerate reports whether min-max scaling is undefined for values.
func Degenerate(values []float64) bool {
	if len(values) <= 1 {
		return true
	}
	lo, hi := bounds(values)
	return hi == lo
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
