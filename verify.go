package ordsort

// IsSorted reports whether data is in non-decreasing order under rule.
func IsSorted[E any](data []E, rule CompareGeneric[E]) bool {
	for k := 0; k+1 < len(data); k++ {
		if rule(data[k], data[k+1]) > 0 {
			return false
		}
	}
	return true
}

// SameElements reports whether a and b hold the same multiset of values,
// ignoring order.
func SameElements[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[E]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
