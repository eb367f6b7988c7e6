package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

const insertTransactionOutputsQuery = `
INSERT INTO decoded_transaction_outputs (
	coin,
	network,
	hash,
	output_index,
	value,
	script_type,
	script_hex,
	script_asm,
	addresses
) VALUES`

// InsertTransactionOutputs stores decoded outputs in ClickHouse.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutputRecord) error {
	start := time.Now()
	var err error
	defer func() {
		coin, network := scope(outputs)
		r.metrics.Observe("insert_transaction_outputs", coin, network, len(outputs), err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionOutputsQuery)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}

	for _, output := range outputs {
		addresses := output.Addresses
		if addresses == nil {
			addresses = []string{}
		}
		if err = batch.Append(
			string(output.Coin),
			string(output.Network),
			output.Hash,
			output.Index,
			output.Value,
			output.ScriptType,
			output.ScriptHex,
			output.ScriptAsm,
			addresses,
		); err != nil {
			return fmt.Errorf("append transaction output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
