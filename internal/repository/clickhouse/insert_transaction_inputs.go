package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

const insertTransactionInputsQuery = `
INSERT INTO decoded_transaction_inputs (
	coin,
	network,
	hash,
	input_index,
	prev_txid,
	prev_vout,
	sequence,
	script_sig_hex,
	script_sig_asm
) VALUES`

// InsertTransactionInputs stores decoded inputs in ClickHouse.
func (r *Repository) InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInputRecord) error {
	start := time.Now()
	var err error
	defer func() {
		coin, network := scope(inputs)
		r.metrics.Observe("insert_transaction_inputs", coin, network, len(inputs), err, start)
	}()

	if len(inputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionInputsQuery)
	if err != nil {
		return fmt.Errorf("prepare transaction inputs batch: %w", err)
	}

	for _, input := range inputs {
		if err = batch.Append(
			string(input.Coin),
			string(input.Network),
			input.Hash,
			input.Index,
			input.PrevTxID,
			input.PrevVout,
			input.Sequence,
			input.ScriptSigHex,
			input.ScriptSigAsm,
		); err != nil {
			return fmt.Errorf("append transaction input: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction inputs: %w", err)
	}
	return nil
}
