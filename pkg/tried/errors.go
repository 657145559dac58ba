package tried

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a malformed request, such as a sequence
	// length outside the bounds of the sequence.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory reports an insert refused because it would allocate more
	// nodes than the container is allowed to hold.
	ErrOutOfMemory = errors.New("out of memory")
)

// Prefix returns the first n elements of seq. It is the explicit-length form
// of every container operation: Find(Prefix(seq, n)) looks up the first n
// elements only.
func Prefix[K any](seq []K, n int) ([]K, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative length %d: %w", n, ErrInvalidArgument)
	}
	if n > len(seq) {
		return nil, fmt.Errorf("length %d exceeds sequence of %d elements: %w", n, len(seq), ErrInvalidArgument)
	}
	return seq[:n], nil
}
