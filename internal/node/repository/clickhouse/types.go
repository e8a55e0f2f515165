package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/node/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}

	Batch interface {
		Append(v ...any) error
		Send() error
	}

	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
)
