package segment

import "fmt"

// maxSegments is the implementation-defined safety limit on segments
// produced for a single page.
const maxSegments = 1_000_000

// LimitError reports that the recursive segmenter produced a pathologically
// large number of segments for one page.
type LimitError struct {
	Count int
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("segment: %d segments exceeds safety limit %d", e.Count, e.Limit)
}
