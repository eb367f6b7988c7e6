// Command tx-decoder-api serves the transaction decoder over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr          string        `long:"addr" env:"TX_DECODER_API_ADDR" description:"http listen address" default:":8001"`
	Coin          model.Coin    `long:"coin" env:"TX_DECODER_API_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"TX_DECODER_API_NETWORK" description:"network used for address extraction" default:"mainnet"`
	Strict        bool          `long:"strict" env:"TX_DECODER_API_STRICT" description:"reject non-canonical compact sizes"`
	NoMarker      bool          `long:"no-extended-marker" env:"TX_DECODER_API_NO_EXTENDED_MARKER" description:"never read 0x00 0x01 after the version as the extended marker"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"TX_DECODER_API_CLICKHOUSE_DSN" description:"store every decoded transaction in ClickHouse"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("tx decoder api failed", zap.Error(err))
	}
}

// storingDecoder stores every transaction it decodes.
type storingDecoder struct {
	svc *service.DecoderService
}

func (d storingDecoder) DecodeHex(ctx context.Context, rawHex string) (model.DecodedTransaction, error) {
	return d.svc.DecodeAndStore(ctx, rawHex)
}

func newDecoder(cfg config) *bitcoin.Decoder {
	var opts []bitcoin.Option
	if cfg.Strict {
		opts = append(opts, bitcoin.WithStrictCompactSize())
	}
	if cfg.NoMarker {
		opts = append(opts, bitcoin.WithoutExtendedMarker())
	}
	return bitcoin.NewDecoder(opts...)
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	scripts, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	svcOpts := []service.Option{service.WithEnricher(scripts)}

	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close repository", zap.Error(err))
			}
		}()
		writer := service.NewBatchWriter(repo, logger)
		writer.Start(ctx)
		defer writer.Stop()
		svcOpts = append(svcOpts, service.WithWriter(writer))
	}

	svc := service.NewDecoderService(
		cfg.Coin,
		cfg.Network,
		newDecoder(cfg),
		metrics.NewDecoder(cfg.Coin, cfg.Network),
		logger,
		svcOpts...,
	)

	var decoder transport.TransactionDecoder = svc
	if cfg.ClickhouseDSN != "" {
		decoder = storingDecoder{svc: svc}
	}

	mux := http.NewServeMux()
	transport.NewHandler(decoder, metrics.NewHTTPAPI(), logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
