package stft

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks configuration or signal arguments rejected during
// boundary validation. All validation failures wrap it, so callers can test
// with errors.Is. No partial results are returned alongside it.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("stft: "+format+": %w", append(args, ErrInvalidArgument)...)
}
