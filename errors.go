package framer

import "errors"

// Sentinel errors for the framer package.
var (
	// ErrBufferBounds is returned when a row or slice computation would
	// read or write outside an allocated buffer. It signals a corrupt or
	// mismatched image buffer coming from upstream, not a programming
	// error inside the engine, so it is surfaced instead of panicking.
	ErrBufferBounds = errors.New("framer: pixel access out of buffer bounds")

	// ErrInvalidDimensions is returned when a buffer is constructed with
	// non-positive dimensions or a storage length that does not match
	// width*height*4.
	ErrInvalidDimensions = errors.New("framer: invalid buffer dimensions")

	// ErrNegativePadding is returned when Expand is called with a
	// negative padding value.
	ErrNegativePadding = errors.New("framer: negative canvas padding")
)
