package config

import "time"

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// LedgerConfig bounds the query surface of the ledger. SessionLocation is the
// zone calendar-day filters are interpreted in.
type LedgerConfig struct {
	SessionLocation *time.Location `env:"LEDGER_SESSION_TZ" envDefault:"UTC"`
	MinPageSize     int            `env:"LEDGER_MIN_PAGE_SIZE" envDefault:"1"`
	MaxPageSize     int            `env:"LEDGER_MAX_PAGE_SIZE" envDefault:"100"`
}
