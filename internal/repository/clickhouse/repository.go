// Package clickhouse stores decoded transactions in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/blockinsight7000-txdecoder/internal/model"
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, metrics: metrics}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

type driverConn struct {
	conn clickhouse.Conn
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c driverConn) Close() error {
	return c.conn.Close()
}

// scope returns the coin and network of the first row, used as metric labels.
func scope[T model.TransactionRecord | model.TransactionInputRecord | model.TransactionOutputRecord](rows []T) (model.Coin, model.Network) {
	if len(rows) == 0 {
		return "", ""
	}

	switch v := any(rows[0]).(type) {
	case model.TransactionRecord:
		return v.Coin, v.Network
	case model.TransactionInputRecord:
		return v.Coin, v.Network
	case model.TransactionOutputRecord:
		return v.Coin, v.Network
	default:
		return "", ""
	}
}
