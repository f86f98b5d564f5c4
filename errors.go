package linebreak

import "github.com/pkg/errors"

var (
	// ErrInvalidEncoding reports input bytes that do not decode to
	// Unicode scalar values. The driver fails before classification
	// rather than substituting replacement characters.
	ErrInvalidEncoding = errors.New("linebreak: input is not valid UTF-8")

	// ErrInvalidTailoring reports an out-of-range or nil rule edit. It
	// is returned at construction time, never during a scan.
	ErrInvalidTailoring = errors.New("linebreak: invalid tailoring")
)
