package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ErrUnavailable marks storage connectivity failures so callers can map them
// to a 500 without string matching. Wrap, never return bare.
var ErrUnavailable = errors.New("database unavailable")

// Postgres is the process-wide connection handle. The connection is
// established on first use and shared for the process lifetime; handlers
// borrow the *sqlx.DB and never close it themselves.
type Postgres struct {
	databaseURL string

	once sync.Once
	db   *sqlx.DB
	err  error
}

// NewPostgres creates the handle without touching the network.
func NewPostgres(databaseURL string) *Postgres {
	return &Postgres{databaseURL: databaseURL}
}

// DB returns the shared connection pool, connecting exactly once under the
// init barrier. Concurrent first callers block until the single attempt
// finishes; its outcome (success or failure) is final for the process.
func (p *Postgres) DB(ctx context.Context) (*sqlx.DB, error) {
	p.once.Do(func() {
		p.db, p.err = connect(p.databaseURL)
	})
	if p.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, p.err)
	}
	return p.db, nil
}

func connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Msg("Connected to PostgreSQL")
	return db, nil
}

// Close closes the database connection if one was ever established.
func (p *Postgres) Close() {
	if p.db == nil {
		return
	}
	if err := p.db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing PostgreSQL connection")
	} else {
		log.Info().Msg("PostgreSQL connection closed")
	}
}
