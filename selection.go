// Package ordsort implements an unstable, instrumented in-place selection sort
// for slices of any type, ordered either naturally or by a caller supplied rule.
package ordsort

import (
	"cmp"
	"time"
)

var _ Sorter[int] = (*SelectionSorter[int])(nil)

// SelectionSorter implements Sorter using selection sort.
//
// Every call performs exactly n(n-1)/2 comparisons for a slice of length n,
// regardless of the input, and at most n-1 swaps. Elements are only swapped
// when a strictly smaller candidate is found, so an already sorted slice, or
// one whose elements are all equal, is never relocated. The sort is not
// stable: equal elements may change relative order.
//
// A SelectionSorter may be reused for any number of sequential calls, but is
// not safe for concurrent use since instrumentation is stored on the instance.
type SelectionSorter[E any] struct {
	config  Config
	natural CompareGeneric[E]
	stats   Stats
}

// NewSelection creates a SelectionSorter whose Sort method uses natural.
// natural may be nil, in which case only SortFunc is usable.
// config may be nil to use the defaults.
func NewSelection[E any](natural CompareGeneric[E], config *Config) *SelectionSorter[E] {
	return &SelectionSorter[E]{
		config:  *mergeConfig(config),
		natural: natural,
	}
}

// Selection creates a SelectionSorter for cmp.Ordered types, using cmp.Compare
// as the natural order.
func Selection[T cmp.Ordered](config *Config) *SelectionSorter[T] {
	return NewSelection[T](cmp.Compare[T], config)
}

// SelectionOf creates a SelectionSorter for types that define their own
// natural order through a Compare method.
func SelectionOf[T Comparable[T]](config *Config) *SelectionSorter[T] {
	return NewSelection[T](NaturalOrder[T](), config)
}

// Sort sorts data in place by natural order and returns it.
func (s *SelectionSorter[E]) Sort(data []E) ([]E, error) {
	if s.natural == nil {
		err := NewArgumentError("rule", "is nil: sorter has no natural order")
		s.logInvalid(err)
		return data, err
	}
	return s.SortFunc(data, s.natural)
}

// SortFunc sorts data in place using rule and returns it.
//
// A nil data slice or a nil rule returns an error wrapping ErrInvalidArgument
// and leaves the instrumentation of the previous call untouched.
//
// A panic raised by rule propagates to the caller, unless
// Config.RecoverComparisonPanics is set, in which case it is returned as a
// *ComparisonError. Either way data is left partially reordered and the
// instrumentation reflects the work done before the failure.
func (s *SelectionSorter[E]) SortFunc(data []E, rule CompareGeneric[E]) (out []E, err error) {
	if err := validate(data, rule); err != nil {
		s.logInvalid(err)
		return data, err
	}

	if s.config.RecoverComparisonPanics {
		defer func() {
			if r := recover(); r != nil {
				out = data
				err = NewComparisonError(r, "SelectionSorter.SortFunc")
				s.config.Logger.Warn().Err(err).Int("n", len(data)).
					Uint64("comparisons", s.stats.Comparisons).Msg("selection sort aborted")
			}
		}()
	}

	selectionSort(data, rule, &s.stats)
	s.logStats(len(data))
	return data, nil
}

// Comparisons returns the number of comparisons made by the most recent sort.
func (s *SelectionSorter[E]) Comparisons() uint64 {
	return s.stats.Comparisons
}

// Relocations returns the number of swaps made by the most recent sort.
func (s *SelectionSorter[E]) Relocations() uint64 {
	return s.stats.Relocations
}

// ElapsedMillis returns the duration of the most recent sort in milliseconds.
func (s *SelectionSorter[E]) ElapsedMillis() float64 {
	return s.stats.ElapsedMillis()
}

// Stats returns a copy of the instrumentation of the most recent sort.
func (s *SelectionSorter[E]) Stats() Stats {
	return s.stats
}

func (s *SelectionSorter[E]) logStats(n int) {
	s.config.Logger.Debug().
		Int("n", n).
		Uint64("comparisons", s.stats.Comparisons).
		Uint64("relocations", s.stats.Relocations).
		Float64("elapsed_ms", s.stats.ElapsedMillis()).
		Msg("selection sort complete")
}

func (s *SelectionSorter[E]) logInvalid(err error) {
	s.config.Logger.Warn().Err(err).Msg("selection sort rejected")
}

// SelectionSortFunc sorts data in place using rule and returns it together
// with the instrumentation of this call. It holds no state between calls and
// is safe to call concurrently on distinct slices.
// Errors and panics behave as for SelectionSorter.SortFunc with the default
// configuration.
func SelectionSortFunc[E any](data []E, rule CompareGeneric[E]) ([]E, Stats, error) {
	var st Stats
	if err := validate(data, rule); err != nil {
		return data, st, err
	}
	selectionSort(data, rule, &st)
	return data, st, nil
}

func validate[E any](data []E, rule CompareGeneric[E]) error {
	if data == nil {
		return NewArgumentError("data", "is nil")
	}
	if rule == nil {
		return NewArgumentError("rule", "is nil")
	}
	return nil
}

// selectionSort resets st, then sorts data while counting into it. Elapsed
// is recorded even if rule panics.
func selectionSort[E any](data []E, rule CompareGeneric[E], st *Stats) {
	*st = Stats{}
	start := time.Now()
	defer func() {
		st.Elapsed = time.Since(start)
	}()

	n := len(data)
	for i := 0; i < n-1; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			st.Comparisons++
			if rule(data[minIndex], data[j]) > 0 {
				minIndex = j
			}
		}
		if minIndex != i {
			data[i], data[minIndex] = data[minIndex], data[i]
			st.Relocations++
		}
	}
}
