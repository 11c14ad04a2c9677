// Package zip implements a minimal single-entry ZIP container: a writer
// that wraps one file's bytes in a local header / central directory / end
// of central directory record, and a reader that recovers that one entry.
// It does not validate CRC-32 (spec non-goal) and does not support
// multi-entry archives.
package zip

import "errors"

// ErrHeader means a local header or central directory signature did not
// match its expected magic bytes, or a header field or offset points past
// the end of the archive.
var ErrHeader = errors.New("zip: invalid header signature")

// ErrMethod means the compression method field held something other than
// 0 (stored) or 8 (deflated).
var ErrMethod = errors.New("zip: unsupported compression method")

// ErrEOCDNotFound means no end-of-central-directory signature was found
// scanning backward from the end of the archive.
var ErrEOCDNotFound = errors.New("zip: end of central directory record not found")
