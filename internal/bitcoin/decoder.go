package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/bytecursor"
)

const (
	extendedMarker = 0x00

	// txid + output index + empty script + sequence
	minInputSize = chainhash.HashSize + 4 + 1 + 4
	// amount + empty script
	minOutputSize = 8 + 1
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithStrictCompactSize rejects compact sizes that are not minimally encoded.
func WithStrictCompactSize() Option {
	return func(d *Decoder) {
		d.strict = true
	}
}

// WithoutExtendedMarker reads the bytes after the version as the input count even when
// they look like the extended-serialization marker and flag.
func WithoutExtendedMarker() Option {
	return func(d *Decoder) {
		d.baseOnly = true
	}
}

// Decoder decodes the base record of a raw transaction.
// A Decoder holds no per-decode state and may be shared between goroutines.
type Decoder struct {
	strict   bool
	baseOnly bool
}

// NewDecoder constructs a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes raw and reports how much of it the base record used.
// Bytes after the base record are counted in Trailing and otherwise ignored.
func (d *Decoder) Decode(raw []byte) (model.DecodedTransaction, error) {
	c := bytecursor.New(raw)
	tx, err := d.DecodeTransaction(c)
	if err != nil {
		return model.DecodedTransaction{}, err
	}
	return model.DecodedTransaction{
		Transaction: tx,
		Hash:        chainhash.DoubleHashH(raw).String(),
		Size:        len(raw),
		Consumed:    c.Position(),
		Trailing:    c.Remaining(),
	}, nil
}

// DecodeTransaction reads version, inputs and outputs from c.
func (d *Decoder) DecodeTransaction(c *bytecursor.Cursor) (model.Transaction, error) {
	version, err := ReadUint32(c)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read version: %w", err)
	}

	var (
		extended bool
		flag     byte
	)
	if !d.baseOnly {
		extended, flag, err = readExtendedMarker(c)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("read marker: %w", err)
		}
	}

	inputCount, err := readCompactSize(c, d.strict)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read input count: %w", err)
	}
	inputs := make([]model.Input, 0, capacity(inputCount, c.Remaining(), minInputSize))
	for i := uint64(0); i < inputCount; i++ {
		input, err := d.readInput(c)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, input)
	}

	outputCount, err := readCompactSize(c, d.strict)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read output count: %w", err)
	}
	outputs := make([]model.Output, 0, capacity(outputCount, c.Remaining(), minOutputSize))
	for i := uint64(0); i < outputCount; i++ {
		output, err := d.readOutput(c)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, output)
	}

	return model.Transaction{
		Version:  version,
		Extended: extended,
		Flag:     flag,
		Inputs:   inputs,
		Outputs:  outputs,
	}, nil
}

func (d *Decoder) readInput(c *bytecursor.Cursor) (model.Input, error) {
	txid, err := ReadTxID(c)
	if err != nil {
		return model.Input{}, fmt.Errorf("read txid: %w", err)
	}
	index, err := ReadUint32(c)
	if err != nil {
		return model.Input{}, fmt.Errorf("read output index: %w", err)
	}
	scriptSig, err := readScript(c, d.strict)
	if err != nil {
		return model.Input{}, fmt.Errorf("read script sig: %w", err)
	}
	sequence, err := ReadUint32(c)
	if err != nil {
		return model.Input{}, fmt.Errorf("read sequence: %w", err)
	}
	return model.Input{
		TxID:        txid,
		OutputIndex: index,
		ScriptSig:   scriptSig,
		Sequence:    sequence,
	}, nil
}

func (d *Decoder) readOutput(c *bytecursor.Cursor) (model.Output, error) {
	amount, err := ReadAmount(c)
	if err != nil {
		return model.Output{}, fmt.Errorf("read amount: %w", err)
	}
	scriptPubKey, err := readScript(c, d.strict)
	if err != nil {
		return model.Output{}, fmt.Errorf("read script pubkey: %w", err)
	}
	return model.Output{
		Amount:       amount,
		ScriptPubKey: scriptPubKey,
	}, nil
}

// readExtendedMarker consumes the marker and flag when the input count slot holds 0x00
// followed by a non-zero flag byte.
func readExtendedMarker(c *bytecursor.Cursor) (bool, byte, error) {
	if c.Remaining() < 2 {
		return false, 0, nil
	}
	b, err := c.Peek(2)
	if err != nil {
		return false, 0, err
	}
	if b[0] != extendedMarker || b[1] == 0 {
		return false, 0, nil
	}
	if _, err := c.Take(2); err != nil {
		return false, 0, err
	}
	return true, b[1], nil
}

// capacity bounds a slice preallocation by what the remaining bytes could hold.
func capacity(count uint64, remaining, minSize int) int {
	limit := uint64(remaining / minSize)
	if count < limit {
		return int(count)
	}
	return int(limit)
}
