package stat

import "sort"

// CredibleLevels converts cumulative probability masses into density
// thresholds. density holds kernel density values sampled over a
// grid covering the distribution's support; probs holds the enclosed
// masses, e.g. 0.68 and 0.95.
//
// The density values are ranked descending, their cumulative sum is
// normalized so the total mass is exactly one, and each probability
// is mapped back to a density by piecewise linear inverse
// interpolation. Probabilities beyond either end clamp to the
// extreme densities. The thresholds are returned sorted ascending,
// so larger masses come first: enclosing more probability needs a
// lower density floor.
//
// CredibleLevels panics if density is empty.
func CredibleLevels(density, probs []float64) []float64 {
	if len(density) == 0 {
		panic("stat: CredibleLevels of empty density grid")
	}

	ranked := append([]float64(nil), density...)
	sort.Sort(sort.Reverse(sort.Float64Slice(ranked)))

	cdf := make([]float64, len(ranked))
	sum := 0.0
	for i, d := range ranked {
		sum += d
		cdf[i] = sum
	}
	for i := range cdf {
		cdf[i] /= sum
	}

	levels := make([]float64, len(probs))
	for i, p := range probs {
		levels[i] = interp(p, cdf, ranked)
	}
	sort.Float64s(levels)
	return levels
}

// interp linearly interpolates fp at x over the increasing points
// xp, clamping beyond the ends.
func interp(x float64, xp, fp []float64) float64 {
	switch {
	case x <= xp[0]:
		return fp[0]
	case x >= xp[len(xp)-1]:
		return fp[len(fp)-1]
	}
	j := sort.SearchFloat64s(xp, x)
	// xp[j-1] < x <= xp[j]
	x0, x1 := xp[j-1], xp[j]
	f0, f1 := fp[j-1], fp[j]
	if x1 == x0 {
		return f0
	}
	return f0 + (f1-f0)*(x-x0)/(x1-x0)
}
