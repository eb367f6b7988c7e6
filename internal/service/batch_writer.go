package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/batcher"
	"go.uber.org/zap"
)

const (
	transactionBatcherCapacity      = 500
	transactionBatcherFlushInterval = 2 * time.Second
	transactionBatcherRPS           = 5
	rowFlushThreshold               = 10000
)

// BatchWriter buffers decoded transactions and writes them to ClickHouse in batches.
type BatchWriter struct {
	repo    ClickhouseRepository
	logger  *zap.Logger
	batcher *batcher.Batcher[model.InsertTransaction]
}

// NewBatchWriter constructs a BatchWriter over repo. Call Start before writing.
func NewBatchWriter(repo ClickhouseRepository, logger *zap.Logger) *BatchWriter {
	w := &BatchWriter{
		repo:   repo,
		logger: logger.Named("writer"),
	}

	w.batcher = batcher.New[model.InsertTransaction](
		w.logger.Named("batcher"),
		w.flush,
		transactionBatcherCapacity,
		transactionBatcherFlushInterval,
		transactionBatcherRPS,
	)
	return w
}

// Start begins flushing in the background until ctx is done or Stop is called.
func (w *BatchWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes whatever is queued and waits for the writes to finish.
func (w *BatchWriter) Stop() {
	w.batcher.Stop()
}

// Failed reports how many transactions could not be written.
func (w *BatchWriter) Failed() int64 {
	return w.batcher.Failed()
}

// WriteTransaction queues tx for the next batch.
func (w *BatchWriter) WriteTransaction(ctx context.Context, tx model.InsertTransaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.batcher.Add(ctx, tx)
}

// flush writes inputs and outputs before the transaction rows, so a stored
// transaction row implies its inputs and outputs are stored too.
func (w *BatchWriter) flush(ctx context.Context, insertTxs []model.InsertTransaction) error {
	txs := make([]model.TransactionRecord, 0, len(insertTxs))
	inputs := make([]model.TransactionInputRecord, 0, len(insertTxs))
	outputs := make([]model.TransactionOutputRecord, 0, len(insertTxs)*2)

	for _, tx := range insertTxs {
		txs = append(txs, tx.Transaction)
		inputs = append(inputs, tx.Inputs...)
		outputs = append(outputs, tx.Outputs...)

		if len(inputs) >= rowFlushThreshold {
			if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionInputs", zap.Int("count", len(inputs)))
			inputs = inputs[:0]
		}
		if len(outputs) >= rowFlushThreshold {
			if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionOutputs", zap.Int("count", len(outputs)))
			outputs = outputs[:0]
		}
	}

	if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
		return err
	}
	if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
		return err
	}
	return w.repo.InsertTransactions(ctx, txs)
}
