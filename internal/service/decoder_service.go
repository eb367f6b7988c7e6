// Package service wires the transaction decoder to its sources and sinks.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/pkg/workerpool"
	"go.uber.org/zap"
)

var (
	// ErrNoSource is returned by DecodeTxID when no source was configured.
	ErrNoSource = errors.New("raw transaction source not configured")
	// ErrNoWriter is returned by the store operations when no writer was configured.
	ErrNoWriter = errors.New("transaction writer not configured")
)

const defaultWorkers = 4

// Option configures a DecoderService.
type Option func(*DecoderService)

// WithEnricher decodes scripts of every transaction. Enrichment failures are logged only.
func WithEnricher(enricher ScriptEnricher) Option {
	return func(s *DecoderService) {
		s.enricher = enricher
	}
}

// WithSource enables DecodeTxID.
func WithSource(source RawTransactionSource) Option {
	return func(s *DecoderService) {
		s.source = source
	}
}

// WithWriter enables DecodeAndStore.
func WithWriter(writer TransactionWriter) Option {
	return func(s *DecoderService) {
		s.writer = writer
	}
}

// WithWorkers sets the parallelism of DecodeBatch.
func WithWorkers(n int) Option {
	return func(s *DecoderService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// DecoderService decodes raw transactions and hands them to storage.
type DecoderService struct {
	coin     model.Coin
	network  model.Network
	decoder  *bitcoin.Decoder
	enricher ScriptEnricher
	source   RawTransactionSource
	writer   TransactionWriter
	metrics  DecoderMetrics
	logger   *zap.Logger
	workers  int
	now      func() time.Time
}

// NewDecoderService constructs a DecoderService labelling stored rows with coin and network.
func NewDecoderService(
	coin model.Coin,
	network model.Network,
	decoder *bitcoin.Decoder,
	metrics DecoderMetrics,
	logger *zap.Logger,
	opts ...Option,
) *DecoderService {
	s := &DecoderService{
		coin:    coin,
		network: network,
		decoder: decoder,
		metrics: metrics,
		logger:  logger.Named("decoder"),
		workers: defaultWorkers,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DecodeHex decodes one hex encoded transaction.
func (s *DecoderService) DecodeHex(ctx context.Context, rawHex string) (model.DecodedTransaction, error) {
	started := time.Now()
	size := 0
	decoded, err := s.decodeHex(ctx, rawHex, &size)
	s.metrics.ObserveDecode(err, size, started)
	if err != nil {
		return model.DecodedTransaction{}, err
	}
	return decoded, nil
}

func (s *DecoderService) decodeHex(ctx context.Context, rawHex string, size *int) (model.DecodedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return model.DecodedTransaction{}, err
	}

	raw, err := bitcoin.DecodeHex(rawHex)
	if err != nil {
		return model.DecodedTransaction{}, err
	}
	*size = len(raw)

	decoded, err := s.decoder.Decode(raw)
	if err != nil {
		return model.DecodedTransaction{}, err
	}

	if s.enricher != nil {
		if err := s.enricher.Enrich(&decoded); err != nil {
			s.logger.Warn("script enrichment failed", zap.String("hash", decoded.Hash), zap.Error(err))
		}
	}
	if decoded.Trailing > 0 {
		s.logger.Debug("bytes left after transaction",
			zap.String("hash", decoded.Hash),
			zap.Int("consumed", decoded.Consumed),
			zap.Int("trailing", decoded.Trailing),
		)
	}
	return decoded, nil
}

// DecodeBatch decodes every hex string in parallel. Results keep the input order.
// The first failure stops the batch and is returned with its index.
func (s *DecoderService) DecodeBatch(ctx context.Context, hexes []string) ([]model.DecodedTransaction, error) {
	started := time.Now()
	results, err := workerpool.Map(ctx, s.workers, hexes,
		func(ctx context.Context, i int, rawHex string) (model.DecodedTransaction, error) {
			decoded, err := s.DecodeHex(ctx, rawHex)
			if err != nil {
				return decoded, fmt.Errorf("transaction %d: %w", i, err)
			}
			return decoded, nil
		})
	s.metrics.ObserveBatch(err, len(hexes), started)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// DecodeTxID fetches a transaction from the configured source and decodes it.
func (s *DecoderService) DecodeTxID(ctx context.Context, txid string) (model.DecodedTransaction, error) {
	if s.source == nil {
		return model.DecodedTransaction{}, ErrNoSource
	}

	rawHex, err := s.source.FetchRawTransaction(ctx, txid)
	if err != nil {
		return model.DecodedTransaction{}, fmt.Errorf("fetch raw transaction %s: %w", txid, err)
	}
	return s.DecodeHex(ctx, rawHex)
}

// DecodeAndStore decodes a transaction and queues its rows on the writer.
func (s *DecoderService) DecodeAndStore(ctx context.Context, rawHex string) (model.DecodedTransaction, error) {
	if s.writer == nil {
		return model.DecodedTransaction{}, ErrNoWriter
	}

	decoded, err := s.DecodeHex(ctx, rawHex)
	if err != nil {
		return model.DecodedTransaction{}, err
	}
	if err := s.Store(ctx, decoded); err != nil {
		return model.DecodedTransaction{}, err
	}
	return decoded, nil
}

// Store queues an already decoded transaction on the writer.
func (s *DecoderService) Store(ctx context.Context, decoded model.DecodedTransaction) error {
	if s.writer == nil {
		return ErrNoWriter
	}

	insert, err := toInsertTransaction(s.coin, s.network, decoded, s.now().UTC())
	if err != nil {
		return fmt.Errorf("convert transaction %s: %w", decoded.Hash, err)
	}
	if err := s.writer.WriteTransaction(ctx, insert); err != nil {
		return fmt.Errorf("write transaction %s: %w", decoded.Hash, err)
	}
	return nil
}
