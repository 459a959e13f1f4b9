package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	DriverNone   = "none"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

type RedisOptions struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type SQLiteOptions struct {
	Path string `yaml:"path"`
}

// Options selects and configures the custom word store.
type Options struct {
	Driver string        `yaml:"driver"`
	Redis  RedisOptions  `yaml:"redis"`
	SQLite SQLiteOptions `yaml:"sqlite"`
}

// ClosableStore is a Store holding a connection.
type ClosableStore interface {
	Store
	Close() error
}

// Open connects the store described by opts. The "none" driver (or an
// empty one) returns an in-memory store.
func Open(ctx context.Context, opts Options) (ClosableStore, error) {
	switch opts.Driver {
	case "", DriverNone:
		return NewMemory(), nil
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.Redis.Addr,
			Password: opts.Redis.Password,
			DB:       opts.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis %s: %w", opts.Redis.Addr, err)
		}
		return NewWithKey(client, opts.Redis.Key), nil
	case DriverSQLite:
		d, err := OpenSQLite(ctx, opts.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("sqlite %s: %w", opts.SQLite.Path, err)
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown custom dictionary driver %q", opts.Driver)
}
