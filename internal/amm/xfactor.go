package amm

// XFactor converts a price-change ratio into a signed multiplier: a ratio of
// 2.0 reads as "2x", a ratio of 0.5 as "-2x". Ratios at or above 1 pass
// through unchanged; ratios below 1 map to the negated reciprocal so gains
// and losses of equal magnitude read symmetrically.
func XFactor(priceChangeRatio float64) float64 {
	if priceChangeRatio >= 1 {
		return priceChangeRatio
	}
	return -1 / priceChangeRatio
}
