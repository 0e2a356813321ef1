package ordsort

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats holds the instrumentation of a single sort call.
type Stats struct {
	// Comparisons is the number of times the comparison rule was invoked
	Comparisons uint64
	// Relocations is the number of swaps; one swap counts once
	Relocations uint64
	// Elapsed is the wall-clock time spent inside the sort
	Elapsed time.Duration
}

// ElapsedMillis returns Elapsed in milliseconds with sub-millisecond precision.
func (st Stats) ElapsedMillis() float64 {
	return float64(st.Elapsed) / float64(time.Millisecond)
}

func (st Stats) String() string {
	return fmt.Sprintf("comparisons: %s\trelocations: %s\telapsed: %.3fms",
		humanize.Comma(int64(st.Comparisons)), humanize.Comma(int64(st.Relocations)), st.ElapsedMillis())
}
