package service

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/safe"
)

func toInsertTransaction(coin model.Coin, network model.Network, decoded model.DecodedTransaction, decodedAt time.Time) (model.InsertTransaction, error) {
	tx := decoded.Transaction

	size, err := safe.Uint32(decoded.Size)
	if err != nil {
		return model.InsertTransaction{}, err
	}
	consumed, err := safe.Uint32(decoded.Consumed)
	if err != nil {
		return model.InsertTransaction{}, err
	}
	trailing, err := safe.Uint32(decoded.Trailing)
	if err != nil {
		return model.InsertTransaction{}, err
	}
	inputCount, err := safe.Uint32(len(tx.Inputs))
	if err != nil {
		return model.InsertTransaction{}, err
	}
	outputCount, err := safe.Uint32(len(tx.Outputs))
	if err != nil {
		return model.InsertTransaction{}, err
	}

	res := model.InsertTransaction{
		Transaction: model.TransactionRecord{
			Coin:        coin,
			Network:     network,
			Hash:        decoded.Hash,
			DecodedAt:   decodedAt,
			Version:     tx.Version,
			Extended:    tx.Extended,
			Size:        size,
			Consumed:    consumed,
			Trailing:    trailing,
			InputCount:  inputCount,
			OutputCount: outputCount,
		},
		Inputs:  make([]model.TransactionInputRecord, 0, len(tx.Inputs)),
		Outputs: make([]model.TransactionOutputRecord, 0, len(tx.Outputs)),
	}

	for i, input := range tx.Inputs {
		var asm string
		if i < len(decoded.InputScripts) {
			asm = decoded.InputScripts[i].Asm
		}
		res.Inputs = append(res.Inputs, model.TransactionInputRecord{
			Coin:         coin,
			Network:      network,
			Hash:         decoded.Hash,
			Index:        uint32(i), //nolint:gosec // bounded by inputCount
			PrevTxID:     input.TxID,
			PrevVout:     input.OutputIndex,
			Sequence:     input.Sequence,
			ScriptSigHex: input.ScriptSig,
			ScriptSigAsm: asm,
		})
	}

	for i, output := range tx.Outputs {
		var script model.OutputScript
		if i < len(decoded.OutputScripts) {
			script = decoded.OutputScripts[i]
		}
		res.Outputs = append(res.Outputs, model.TransactionOutputRecord{
			Coin:       coin,
			Network:    network,
			Hash:       decoded.Hash,
			Index:      uint32(i), //nolint:gosec // bounded by outputCount
			Value:      uint64(output.Amount),
			ScriptType: script.Type,
			ScriptHex:  output.ScriptPubKey,
			ScriptAsm:  script.Asm,
			Addresses:  script.Addresses,
		})
	}
	return res, nil
}
