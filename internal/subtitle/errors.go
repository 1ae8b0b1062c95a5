package subtitle

import (
	"errors"
	"fmt"
)

var (
	// matched by every *FormatError through errors.Is
	ErrFormat = errors.New("malformed subtitle block")

	ErrMissingTimecode  = errors.New("missing timecode line")
	ErrMissingSeparator = errors.New("timecode line needs exactly one \" --> \"")
	ErrBadComponent     = errors.New("timecode needs four integer components")

	ErrIndexOutOfRange = errors.New("section index out of range")
)

// FormatError reports the block that aborted a parse. Block is the 1-based
// position among the non-empty blocks of the input.
type FormatError struct {
	Block   int
	Content string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("block %d %q: %v", e.Block, e.Content, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
