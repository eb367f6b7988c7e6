// Package render turns decoded transactions into human-readable output.
package render

import (
	"github.com/btcsuite/btcd/btcutil"
	jsoniter "github.com/json-iterator/go"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/safe"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TransactionView is the rendered form of a decoded transaction.
type TransactionView struct {
	Hash          string       `json:"hash"`
	Size          int          `json:"size"`
	TrailingBytes int          `json:"trailing_bytes"`
	Version       uint32       `json:"version"`
	Extended      bool         `json:"extended,omitempty"`
	Inputs        []InputView  `json:"inputs"`
	Outputs       []OutputView `json:"outputs"`
}

// InputView is the rendered form of an input.
type InputView struct {
	TxID         string `json:"txid"`
	OutputIndex  uint32 `json:"output_index"`
	ScriptSig    string `json:"script_sig"`
	ScriptSigAsm string `json:"script_sig_asm,omitempty"`
	Sequence     uint32 `json:"sequence"`
}

// OutputView is the rendered form of an output.
type OutputView struct {
	Amount          uint64   `json:"amount"`
	AmountBTC       string   `json:"amount_btc,omitempty"`
	ScriptPubKey    string   `json:"script_pubkey"`
	ScriptType      string   `json:"script_type,omitempty"`
	ScriptPubKeyAsm string   `json:"script_pubkey_asm,omitempty"`
	Addresses       []string `json:"addresses,omitempty"`
}

// NewTransactionView builds the view of decoded. Script details are included when present.
func NewTransactionView(decoded model.DecodedTransaction) TransactionView {
	tx := decoded.Transaction
	view := TransactionView{
		Hash:          decoded.Hash,
		Size:          decoded.Size,
		TrailingBytes: decoded.Trailing,
		Version:       tx.Version,
		Extended:      tx.Extended,
		Inputs:        make([]InputView, 0, len(tx.Inputs)),
		Outputs:       make([]OutputView, 0, len(tx.Outputs)),
	}

	for i, input := range tx.Inputs {
		v := InputView{
			TxID:        input.TxID,
			OutputIndex: input.OutputIndex,
			ScriptSig:   input.ScriptSig,
			Sequence:    input.Sequence,
		}
		if i < len(decoded.InputScripts) {
			v.ScriptSigAsm = decoded.InputScripts[i].Asm
		}
		view.Inputs = append(view.Inputs, v)
	}

	for i, output := range tx.Outputs {
		v := OutputView{
			Amount:       uint64(output.Amount),
			AmountBTC:    formatBTC(output.Amount),
			ScriptPubKey: output.ScriptPubKey,
		}
		if i < len(decoded.OutputScripts) {
			script := decoded.OutputScripts[i]
			v.ScriptType = script.Type
			v.ScriptPubKeyAsm = script.Asm
			v.Addresses = script.Addresses
		}
		view.Outputs = append(view.Outputs, v)
	}
	return view
}

// JSON renders decoded as indented JSON.
func JSON(decoded model.DecodedTransaction) ([]byte, error) {
	return json.MarshalIndent(NewTransactionView(decoded), "", "  ")
}

// JSONList renders several decoded transactions as an indented JSON array.
func JSONList(decoded []model.DecodedTransaction) ([]byte, error) {
	views := make([]TransactionView, 0, len(decoded))
	for _, d := range decoded {
		views = append(views, NewTransactionView(d))
	}
	return json.MarshalIndent(views, "", "  ")
}

// formatBTC returns "" for amounts that do not fit btcutil.Amount.
func formatBTC(amount model.Amount) string {
	sats, err := safe.Int64(uint64(amount))
	if err != nil {
		return ""
	}
	return btcutil.Amount(sats).Format(btcutil.AmountBTC)
}
