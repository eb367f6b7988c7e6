// Package bitcoin decodes the raw bitcoin transaction wire format.
package bitcoin

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/bytecursor"
)

const (
	compactSize16 = 0xfd
	compactSize32 = 0xfe
	compactSize64 = 0xff
)

// ReadCompactSize reads a variable-length count. Longer-than-minimal encodings are accepted.
func ReadCompactSize(c *bytecursor.Cursor) (uint64, error) {
	return readCompactSize(c, false)
}

func readCompactSize(c *bytecursor.Cursor, strict bool) (uint64, error) {
	d, err := c.ReadByte()
	if err != nil {
		return 0, err
	}

	var (
		value   uint64
		minimum uint64
	)
	switch d {
	case compactSize16:
		b, err := c.Take(2)
		if err != nil {
			return 0, err
		}
		value, minimum = uint64(binary.LittleEndian.Uint16(b)), compactSize16
	case compactSize32:
		b, err := c.Take(4)
		if err != nil {
			return 0, err
		}
		value, minimum = uint64(binary.LittleEndian.Uint32(b)), math.MaxUint16+1
	case compactSize64:
		b, err := c.Take(8)
		if err != nil {
			return 0, err
		}
		value, minimum = binary.LittleEndian.Uint64(b), math.MaxUint32+1
	default:
		return uint64(d), nil
	}

	if strict && value < minimum {
		return 0, fmt.Errorf("%w: %d encoded with discriminant %#x", ErrNonCanonicalCompactSize, value, d)
	}
	return value, nil
}

// ReadUint32 reads a 4-byte little-endian unsigned integer.
func ReadUint32(c *bytecursor.Cursor) (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadAmount reads an 8-byte little-endian satoshi amount.
func ReadAmount(c *bytecursor.Cursor) (model.Amount, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return model.Amount(binary.LittleEndian.Uint64(b)), nil
}

// ReadTxID reads a 32-byte identifier and renders it in display (reversed) byte order.
func ReadTxID(c *bytecursor.Cursor) (string, error) {
	b, err := c.Take(chainhash.HashSize)
	if err != nil {
		return "", err
	}
	var h chainhash.Hash
	copy(h[:], b)
	return h.String(), nil
}

// ReadScript reads a compact-size length followed by that many bytes, rendered as hex.
func ReadScript(c *bytecursor.Cursor) (string, error) {
	return readScript(c, false)
}

func readScript(c *bytecursor.Cursor, strict bool) (string, error) {
	n, err := readCompactSize(c, strict)
	if err != nil {
		return "", err
	}
	b, err := c.Take(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
