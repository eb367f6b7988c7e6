package bitcoin

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/bytecursor"
)

var (
	// ErrOutOfData is returned when the input ends before a field is complete.
	ErrOutOfData = bytecursor.ErrOutOfData
	// ErrNonCanonicalCompactSize is returned in strict mode for a compact size longer than its minimal form.
	ErrNonCanonicalCompactSize = errors.New("non-canonical compact size")
	// ErrInvalidHex is returned when the input is not a hex string.
	ErrInvalidHex = errors.New("invalid hex")
)
