package entity

// StockMap holds units per warehouse ID.
type StockMap map[string]int

// Total sums every bucket of the map.
func (m StockMap) Total() int {
	total := 0
	for _, qty := range m {
		total += qty
	}
	return total
}

// Clone returns an independent copy; a nil map clones to an empty one.
func (m StockMap) Clone() StockMap {
	out := make(StockMap, len(m))
	for id, qty := range m {
		out[id] = qty
	}
	return out
}
