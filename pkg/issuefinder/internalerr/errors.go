package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrStopwordsUnavailable = errors.New("stopword list unavailable")
	ErrCorpusUnavailable    = errors.New("corpus unavailable")
	ErrUnsupportedFormat    = errors.New("unsupported format")
)
