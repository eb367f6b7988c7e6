package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/clock"
	"go.uber.org/zap"
)

const (
	defaultFetchAttempts   = 3
	defaultRetryDelay      = 500 * time.Millisecond
	defaultRetryDelayLimit = 5 * time.Second
)

// ErrTransactionNotFound is returned when the node does not know the requested txid.
var ErrTransactionNotFound = errors.New("transaction not found")

// RPCSource fetches the raw hex of transactions from a node.
type RPCSource struct {
	client     RawTransactionClient
	logger     *zap.Logger
	attempts   int
	retryDelay time.Duration
	delayLimit time.Duration
}

// NewRPCSource constructs an RPCSource retrying transient failures.
func NewRPCSource(client RawTransactionClient, logger *zap.Logger) *RPCSource {
	return &RPCSource{
		client:     client,
		logger:     logger,
		attempts:   defaultFetchAttempts,
		retryDelay: defaultRetryDelay,
		delayLimit: defaultRetryDelayLimit,
	}
}

// FetchRawTransaction returns the raw hex of txid.
func (s *RPCSource) FetchRawTransaction(ctx context.Context, txid string) (string, error) {
	if len(txid) != chainhash.MaxHashStringSize {
		return "", fmt.Errorf("txid %q must be %d hex characters", txid, chainhash.MaxHashStringSize)
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return "", fmt.Errorf("parse txid %q: %w", txid, err)
	}

	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		res, err := s.client.GetRawTransactionVerbose(hash)
		if err == nil {
			if res == nil || res.Hex == "" {
				return "", fmt.Errorf("node returned empty transaction %s", txid)
			}
			return res.Hex, nil
		}
		if isNotFound(err) {
			return "", fmt.Errorf("%w: %s: %v", ErrTransactionNotFound, txid, err)
		}

		lastErr = err
		if attempt == s.attempts {
			break
		}
		delay := clock.Backoff(attempt, s.retryDelay, s.delayLimit)
		s.logger.Warn("fetch raw transaction failed, retrying",
			zap.String("txid", txid),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := clock.SleepWithContext(ctx, delay); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("fetch raw transaction %s: %w", txid, lastErr)
}

func isNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == btcjson.ErrRPCNoTxInfo || rpcErr.Code == btcjson.ErrRPCInvalidAddressOrKey
	}
	return false
}
