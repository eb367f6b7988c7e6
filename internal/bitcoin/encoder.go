package bitcoin

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

// EncodeTransaction serializes the base record of tx. Compact sizes are written in minimal form.
func EncodeTransaction(tx model.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTransaction(&buf, tx); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTransaction(w io.Writer, tx model.Transaction) error {
	if err := binary.Write(w, binary.LittleEndian, tx.Version); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if tx.Extended {
		flag := tx.Flag
		if flag == 0 {
			flag = 0x01
		}
		if _, err := w.Write([]byte{extendedMarker, flag}); err != nil {
			return fmt.Errorf("write marker: %w", err)
		}
	}

	if err := wire.WriteVarInt(w, 0, uint64(len(tx.Inputs))); err != nil {
		return fmt.Errorf("write input count: %w", err)
	}
	for i, input := range tx.Inputs {
		if err := writeInput(w, input); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}

	if err := wire.WriteVarInt(w, 0, uint64(len(tx.Outputs))); err != nil {
		return fmt.Errorf("write output count: %w", err)
	}
	for i, output := range tx.Outputs {
		if err := writeOutput(w, output); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
	}
	return nil
}

func writeInput(w io.Writer, input model.Input) error {
	hash, err := chainhash.NewHashFromStr(input.TxID)
	if err != nil {
		return fmt.Errorf("parse txid %q: %w", input.TxID, err)
	}
	if _, err := w.Write(hash[:]); err != nil {
		return fmt.Errorf("write txid: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, input.OutputIndex); err != nil {
		return fmt.Errorf("write output index: %w", err)
	}
	if err := writeScript(w, input.ScriptSig); err != nil {
		return fmt.Errorf("write script sig: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, input.Sequence); err != nil {
		return fmt.Errorf("write sequence: %w", err)
	}
	return nil
}

func writeOutput(w io.Writer, output model.Output) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(output.Amount)); err != nil {
		return fmt.Errorf("write amount: %w", err)
	}
	if err := writeScript(w, output.ScriptPubKey); err != nil {
		return fmt.Errorf("write script pubkey: %w", err)
	}
	return nil
}

func writeScript(w io.Writer, scriptHex string) error {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return wire.WriteVarBytes(w, 0, script)
}
