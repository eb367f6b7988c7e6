package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

const insertTransactionsQuery = `
INSERT INTO decoded_transactions (
	coin,
	network,
	hash,
	decoded_at,
	version,
	extended,
	size,
	consumed,
	trailing,
	input_count,
	output_count
) VALUES`

// InsertTransactions stores decoded transactions in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.TransactionRecord) error {
	start := time.Now()
	var err error
	defer func() {
		coin, network := scope(txs)
		r.metrics.Observe("insert_transactions", coin, network, len(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Coin),
			string(tx.Network),
			tx.Hash,
			tx.DecodedAt,
			tx.Version,
			tx.Extended,
			tx.Size,
			tx.Consumed,
			tx.Trailing,
			tx.InputCount,
			tx.OutputCount,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
