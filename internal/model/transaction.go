// Package model defines the decoded transaction entities.
package model

// Amount is a count of satoshis.
type Amount uint64

// Input references an output of a previous transaction.
type Input struct {
	TxID        string
	OutputIndex uint32
	ScriptSig   string
	Sequence    uint32
}

// Output pays Amount to the holder of ScriptPubKey.
type Output struct {
	Amount       Amount
	ScriptPubKey string
}

// Transaction is the base record of a serialized transaction.
// Extended is set when the extended-serialization marker was present; Flag keeps its flag byte.
type Transaction struct {
	Version  uint32
	Extended bool
	Flag     byte
	Inputs   []Input
	Outputs  []Output
}

// InputScript holds the disassembly of an unlocking script.
type InputScript struct {
	Asm string
}

// OutputScript describes a locking script.
type OutputScript struct {
	Type      string
	Asm       string
	Addresses []string
}

// DecodedTransaction is a transaction together with facts about its raw encoding.
type DecodedTransaction struct {
	Transaction Transaction
	// Hash is the double-SHA256 of the raw bytes in display order.
	Hash string
	// Size is the length of the raw bytes.
	Size int
	// Consumed is the number of bytes read by the base record.
	Consumed int
	// Trailing is the number of bytes left after the base record.
	Trailing int

	// Populated only when scripts were enriched.
	InputScripts  []InputScript
	OutputScripts []OutputScript
}
