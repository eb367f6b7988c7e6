package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionDecoder interface {
		DecodeHex(ctx context.Context, rawHex string) (model.DecodedTransaction, error)
	}
	HTTPMetrics interface {
		Observe(route string, code int, started time.Time)
	}
)
