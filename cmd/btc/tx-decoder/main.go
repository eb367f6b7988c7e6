// Command tx-decoder decodes raw bitcoin transactions and prints them as JSON.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/render"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/service"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	sampleTxHex = "01000000000101eb3ae38f27191aa5f3850dc9cad00492b88b72404f9da135698679268041c54a0100000000ffffffff02204e0000000000002251203b41daba4c9ace578369740f15e5ec880c28279ee7f51b07dca69c7061e07068f8240100000000001600147752c165ea7be772b2c0acb7f4d6047ae6f4768e0141cf5efe2d8ef13ed0af21d4f4cb82422d6252d70324f6f4576b727b7d918e521c00b51be739df2f899c49dc267c0ad280aca6dab0d2fa2b42a45182fc83e817130100000000"

	maxLineBytes = 8 << 20
)

type config struct {
	Hex           string        `long:"hex" env:"TX_DECODER_HEX" description:"raw transaction hex"`
	File          string        `long:"file" env:"TX_DECODER_FILE" description:"file with one raw transaction hex per line"`
	TxID          string        `long:"txid" env:"TX_DECODER_TXID" description:"transaction id to fetch from the node"`
	RPCURL        string        `long:"rpc-url" env:"TX_DECODER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"TX_DECODER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"TX_DECODER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	Coin          model.Coin    `long:"coin" env:"TX_DECODER_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"TX_DECODER_NETWORK" description:"network used for address extraction" default:"mainnet"`
	Strict        bool          `long:"strict" env:"TX_DECODER_STRICT" description:"reject non-canonical compact sizes"`
	NoMarker      bool          `long:"no-extended-marker" env:"TX_DECODER_NO_EXTENDED_MARKER" description:"never read 0x00 0x01 after the version as the extended marker"`
	NoScripts     bool          `long:"no-scripts" env:"TX_DECODER_NO_SCRIPTS" description:"skip script classification and disassembly"`
	Workers       int           `long:"workers" env:"TX_DECODER_WORKERS" description:"parallel decoders for --file" default:"4"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"TX_DECODER_CLICKHOUSE_DSN" description:"store decoded transactions in ClickHouse"`
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
		logger.Fatal("tx decoder failed", zap.Error(err))
	}
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
	svcOpts := []service.Option{service.WithWorkers(cfg.Workers)}
	if !cfg.NoScripts {
		scripts, err := bitcoin.NewScriptDecoder(cfg.Network)
		if err != nil {
			return fmt.Errorf("init script decoder: %w", err)
		}
		svcOpts = append(svcOpts, service.WithEnricher(scripts))
	}

	if cfg.TxID != "" {
		rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return fmt.Errorf("init rpc client: %w", err)
		}
		defer func() {
			rpcClient.Shutdown()
			rpcClient.WaitForShutdown()
		}()
		observed := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))
		svcOpts = append(svcOpts, service.WithSource(bitcoin.NewRPCSource(observed, logger.Named("rpc"))))
	}

	var writer *service.BatchWriter
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
		writer = service.NewBatchWriter(repo, logger)
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

	decoded, list, err := decode(ctx, cfg, svc, logger)
	if err != nil {
		return err
	}

	if writer != nil {
		for _, d := range decoded {
			if err := svc.Store(ctx, d); err != nil {
				return err
			}
		}
		writer.Stop()
		if failed := writer.Failed(); failed > 0 {
			return fmt.Errorf("%d transactions not stored", failed)
		}
		logger.Info("transactions stored", zap.Int("count", len(decoded)))
	}

	var out []byte
	if list {
		out, err = render.JSONList(decoded)
	} else {
		out, err = render.JSON(decoded[0])
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}

// decode runs the requested input mode. list reports whether the output is an array.
func decode(ctx context.Context, cfg config, svc *service.DecoderService, logger *zap.Logger) (_ []model.DecodedTransaction, list bool, _ error) {
	modes := 0
	for _, v := range []string{cfg.Hex, cfg.File, cfg.TxID} {
		if v != "" {
			modes++
		}
	}
	if modes > 1 {
		return nil, false, errors.New("only one of --hex, --file, --txid may be set")
	}

	switch {
	case cfg.File != "":
		hexes, err := readHexLines(cfg.File)
		if err != nil {
			return nil, false, err
		}
		decoded, err := svc.DecodeBatch(ctx, hexes)
		return decoded, true, err
	case cfg.TxID != "":
		decoded, err := svc.DecodeTxID(ctx, cfg.TxID)
		if err != nil {
			return nil, false, err
		}
		return []model.DecodedTransaction{decoded}, false, nil
	default:
		raw := cfg.Hex
		if raw == "" {
			logger.Info("no input given, decoding the sample transaction")
			raw = sampleTxHex
		}
		decoded, err := svc.DecodeHex(ctx, raw)
		if err != nil {
			return nil, false, err
		}
		return []model.DecodedTransaction{decoded}, false, nil
	}
}

// readHexLines returns the non-empty lines of path. Lines starting with # are skipped.
func readHexLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var hexes []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hexes = append(hexes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(hexes) == 0 {
		return nil, fmt.Errorf("%s contains no transactions", path)
	}
	return hexes, nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
