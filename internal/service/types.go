package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	DecoderMetrics interface {
		ObserveDecode(err error, size int, started time.Time)
		ObserveBatch(err error, items int, started time.Time)
	}
	RawTransactionSource interface {
		FetchRawTransaction(ctx context.Context, txid string) (string, error)
	}
	ScriptEnricher interface {
		Enrich(decoded *model.DecodedTransaction) error
	}
	TransactionWriter interface {
		WriteTransaction(ctx context.Context, tx model.InsertTransaction) error
	}
	ClickhouseRepository interface {
		InsertTransactions(ctx context.Context, txs []model.TransactionRecord) error
		InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInputRecord) error
		InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutputRecord) error
	}
)
