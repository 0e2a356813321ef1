package ordsort

// Sorter is the interface that all ordsort strategies must satisfy.
// A Sorter sorts a slice in place and records instrumentation for the most
// recent call. Instrumentation is overwritten, not accumulated, by each call.
//
// Implementations keep instrumentation as per-instance state, so a single
// Sorter must not be used by overlapping Sort calls. Give each goroutine its
// own instance, or serialize access.
type Sorter[E any] interface {
	// Sort sorts data in place using the natural order of E and returns the
	// same slice. It is equivalent to SortFunc(data, natural).
	Sort(data []E) ([]E, error)

	// SortFunc sorts data in place using rule as the total order and returns
	// the same slice.
	SortFunc(data []E, rule CompareGeneric[E]) ([]E, error)

	// Comparisons returns the number of element comparisons made by the most
	// recent sort.
	Comparisons() uint64

	// Relocations returns the number of swaps made by the most recent sort.
	Relocations() uint64

	// ElapsedMillis returns the wall-clock time spent in the most recent sort,
	// in milliseconds with sub-millisecond precision.
	ElapsedMillis() float64

	// Stats returns all instrumentation of the most recent sort as one value.
	Stats() Stats
}

// CompareGeneric is a function type for comparing two items of type E.
// It must implement a total order.
// Returns a negative integer if a should be ordered before b, zero if they are equal,
// and a positive integer if a should be ordered after b in the sorted output.
// Failures must be signalled by panicking.
// This follows the same semantics as cmp.Compare and can be implemented using cmp.Compare[T] for ordered types.
type CompareGeneric[E any] func(a, b E) int

// Comparable is implemented by types that carry their own natural order.
type Comparable[T any] interface {
	// Compare returns a negative value if the receiver orders before other,
	// zero if they are equal, and a positive value otherwise.
	Compare(other T) int
}

// NaturalOrder returns the natural order of a Comparable type as a CompareGeneric.
func NaturalOrder[T Comparable[T]]() CompareGeneric[T] {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// Reverse returns a rule that orders elements opposite to rule.
func Reverse[E any](rule CompareGeneric[E]) CompareGeneric[E] {
	return func(a, b E) int {
		return rule(b, a)
	}
}
