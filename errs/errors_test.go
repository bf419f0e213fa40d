package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNarrowSentinelsWrapBroad(t *testing.T) {
	tests := []struct {
		name   string
		narrow error
		broad  error
	}{
		{"short buffer", ErrShortBuffer, ErrParse},
		{"record too large", ErrRecordTooLarge, ErrParse},
		{"count mismatch", ErrCountMismatch, ErrParse},
		{"unordered runs", ErrUnorderedRuns, ErrParse},
		{"limit", ErrLimitExceeded, ErrParse},
		{"signature", ErrInvalidSignature, ErrInvalidFormat},
		{"control record", ErrInvalidControlRecord, ErrInvalidFormat},
		{"key offset", ErrKeyOffset, ErrInvalidFormat},
		{"overlap", ErrTableOverlap, ErrInvalidFormat},
		{"pack", ErrInvalidPack, ErrInvalidFormat},
		{"checksum", ErrChecksumMismatch, ErrInvalidFormat},
		{"password", ErrPasswordEncrypted, ErrUnsupportedVersion},
		{"surrogate", ErrUnpairedSurrogate, ErrEncoding},
		{"text too long", ErrTextTooLong, ErrEncoding},
		{"stream", ErrStreamNotFound, ErrNotFound},
		{"index", ErrIndexOutOfRange, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.narrow, tt.broad)
		})
	}
}

func TestBroadSentinelsAreDistinct(t *testing.T) {
	broad := []error{ErrInvalidFormat, ErrUnsupportedVersion, ErrParse, ErrEncoding, ErrNotFound}
	for i, a := range broad {
		for j, b := range broad {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}
