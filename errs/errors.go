// Package errs defines the error taxonomy shared by every hwp5 package.
//
// Five broad sentinels classify every failure:
//
//   - ErrInvalidFormat: signature, magic or structural mismatch. Fatal for the whole open.
//   - ErrUnsupportedVersion: a document feature the codec refuses to read (password encryption).
//   - ErrParse: insufficient bytes, oversized declared lengths, count mismatches. Scoped to
//     the offending record or entity.
//   - ErrEncoding: invalid UTF-16 sequences.
//   - ErrNotFound: a missing container path.
//
// Narrow sentinels wrap one of the broad ones, so callers can match either level with
// errors.Is. IO errors are passed through wrapped and never reclassified.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat      = errors.New("hwp5: invalid format")
	ErrUnsupportedVersion = errors.New("hwp5: unsupported version")
	ErrParse              = errors.New("hwp5: parse error")
	ErrEncoding           = errors.New("hwp5: encoding error")
	ErrNotFound           = errors.New("hwp5: not found")
)

var (
	// ErrShortBuffer is returned when fewer bytes remain than a fixed layout requires.
	ErrShortBuffer = fmt.Errorf("%w: short buffer", ErrParse)
	// ErrRecordTooLarge is returned when a record declares more bytes than the stream holds.
	ErrRecordTooLarge = fmt.Errorf("%w: declared record size exceeds stream", ErrParse)
	// ErrCountMismatch is returned when a counted array does not fit its record.
	ErrCountMismatch = fmt.Errorf("%w: field count mismatch", ErrParse)
	// ErrUnorderedRuns is returned when a character-shape run table is not sorted by position.
	ErrUnorderedRuns = fmt.Errorf("%w: run positions not non-decreasing", ErrParse)
	// ErrLimitExceeded is returned when an input exceeds a configured Limits value.
	ErrLimitExceeded = fmt.Errorf("%w: limit exceeded", ErrParse)

	// ErrInvalidSignature is returned when the FileHeader magic does not match.
	ErrInvalidSignature = fmt.Errorf("%w: bad file signature", ErrInvalidFormat)
	// ErrInvalidControlRecord is returned when a distribution control record is malformed.
	ErrInvalidControlRecord = fmt.Errorf("%w: bad distribution control record", ErrInvalidFormat)
	// ErrKeyOffset is returned when the descrambled key offset runs past the working block.
	ErrKeyOffset = fmt.Errorf("%w: distribution key offset out of range", ErrInvalidFormat)
	// ErrTableOverlap is returned when two anchor cells cover the same grid coordinate.
	ErrTableOverlap = fmt.Errorf("%w: overlapping table cells", ErrInvalidFormat)
	// ErrInvalidPack is returned when a pack bundle is malformed.
	ErrInvalidPack = fmt.Errorf("%w: invalid pack bundle", ErrInvalidFormat)
	// ErrChecksumMismatch is returned when a pack entry fails its checksum.
	ErrChecksumMismatch = fmt.Errorf("%w: checksum mismatch", ErrInvalidFormat)

	// ErrPasswordEncrypted is returned for documents encrypted with a password rather than
	// the distribution scheme.
	ErrPasswordEncrypted = fmt.Errorf("%w: password-encrypted document", ErrUnsupportedVersion)

	// ErrUnpairedSurrogate is returned by strict text decoding on a lone surrogate.
	ErrUnpairedSurrogate = fmt.Errorf("%w: unpaired UTF-16 surrogate", ErrEncoding)
	// ErrTextTooLong is returned when a string does not fit its 16-bit length prefix.
	ErrTextTooLong = fmt.Errorf("%w: text exceeds 65535 code units", ErrEncoding)

	// ErrStreamNotFound is returned when a container path does not exist.
	ErrStreamNotFound = fmt.Errorf("%w: stream", ErrNotFound)
	// ErrIndexOutOfRange is returned when a resource index does not resolve.
	ErrIndexOutOfRange = fmt.Errorf("%w: resource index", ErrNotFound)

	// ErrSessionSealed is returned when an authoring session is mutated after Encode.
	ErrSessionSealed = errors.New("hwp5: session already encoded")
	// ErrInvalidArgument is returned for caller mistakes on the authoring API.
	ErrInvalidArgument = errors.New("hwp5: invalid argument")
)
