package confirmation

import (
	"context"
	"fmt"

	"github.com/invitewall/invitewall-api/internal/pkg/database"
)

// Repository defines confirmation data access interface. ListRecent doubles
// as the full scan for aggregation: it is unbounded, and the totals computed
// over it are order-independent.
type Repository interface {
	Create(ctx context.Context, c *Confirmation) error
	ListRecent(ctx context.Context) ([]*Confirmation, error)
}

type repository struct {
	pg *database.Postgres
}

// NewRepository creates new confirmation repository
func NewRepository(pg *database.Postgres) Repository {
	return &repository{pg: pg}
}

func (r *repository) Create(ctx context.Context, c *Confirmation) error {
	db, err := r.pg.DB(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO confirmations (id, name, phone, companions, message, status, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq
	`
	err = db.QueryRowxContext(ctx, query,
		c.ID,
		c.Name,
		c.Phone,
		c.Companions,
		c.Message,
		c.Status,
		c.ConfirmedAt,
	).Scan(&c.Seq)
	if err != nil {
		return fmt.Errorf("insert confirmation: %w", err)
	}
	return nil
}

// ListRecent returns all confirmations, most recent first. Unbounded: the
// collection is capped by event attendance, not by traffic.
func (r *repository) ListRecent(ctx context.Context) ([]*Confirmation, error) {
	db, err := r.pg.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM confirmations ORDER BY seq DESC`
	var confirmations []*Confirmation
	if err := db.SelectContext(ctx, &confirmations, query); err != nil {
		return nil, fmt.Errorf("list confirmations: %w", err)
	}
	return confirmations, nil
}
