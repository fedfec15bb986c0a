package dsp

import "sort"

// Interp evaluates the piecewise-linear function defined by the points
// (xp[i], fp[i]) at every position in x. xp is assumed non-decreasing;
// positions outside its range clamp to the first or last value.
func Interp(x, xp, fp []float64) []float64 {
	out := make([]float64, len(x))
	if len(xp) == 0 {
		return out
	}
	for i, xi := range x {
		out[i] = interpAt(xi, xp, fp)
	}
	return out
}

func interpAt(xi float64, xp, fp []float64) float64 {
	j := sort.SearchFloat64s(xp, xi)
	if j == 0 {
		return fp[0]
	}
	if j == len(xp) {
		return fp[len(fp)-1]
	}
	x0, x1 := xp[j-1], xp[j]
	if x1 == x0 {
		return fp[j]
	}
	t := (xi - x0) / (x1 - x0)
	return fp[j-1] + t*(fp[j]-fp[j-1])
}
