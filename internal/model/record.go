package model

import "time"

// TransactionRecord is a decoded transaction row stored in ClickHouse.
type TransactionRecord struct {
	Coin        Coin
	Network     Network
	Hash        string
	DecodedAt   time.Time
	Version     uint32
	Extended    bool
	Size        uint32
	Consumed    uint32
	Trailing    uint32
	InputCount  uint32
	OutputCount uint32
}

// TransactionInputRecord is a decoded input row.
type TransactionInputRecord struct {
	Coin         Coin
	Network      Network
	Hash         string
	Index        uint32
	PrevTxID     string
	PrevVout     uint32
	Sequence     uint32
	ScriptSigHex string
	ScriptSigAsm string
}

// TransactionOutputRecord is a decoded output row.
type TransactionOutputRecord struct {
	Coin       Coin
	Network    Network
	Hash       string
	Index      uint32
	Value      uint64
	ScriptType string
	ScriptHex  string
	ScriptAsm  string
	Addresses  []string
}

// InsertTransaction groups the rows produced by one decoded transaction.
type InsertTransaction struct {
	Transaction TransactionRecord
	Inputs      []TransactionInputRecord
	Outputs     []TransactionOutputRecord
}
