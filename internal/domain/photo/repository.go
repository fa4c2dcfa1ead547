package photo

import (
	"context"
	"fmt"

	"github.com/invitewall/invitewall-api/internal/pkg/database"
)

// Repository defines photo data access interface
type Repository interface {
	Create(ctx context.Context, photo *Photo) error
	ListRecent(ctx context.Context, limit int) ([]*Photo, error)
	ListAll(ctx context.Context) ([]*Photo, error)
}

type repository struct {
	pg *database.Postgres
}

// NewRepository creates new photo repository
func NewRepository(pg *database.Postgres) Repository {
	return &repository{pg: pg}
}

func (r *repository) Create(ctx context.Context, photo *Photo) error {
	db, err := r.pg.DB(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO photos (id, file_name, user_name, description, image_data, mime_type, size_bytes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq
	`
	err = db.QueryRowxContext(ctx, query,
		photo.ID,
		photo.FileName,
		photo.UserName,
		photo.Description,
		photo.ImageData,
		photo.MimeType,
		photo.SizeBytes,
		photo.UploadedAt,
	).Scan(&photo.Seq)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]*Photo, error) {
	db, err := r.pg.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM photos ORDER BY seq DESC LIMIT $1`
	var photos []*Photo
	if err := db.SelectContext(ctx, &photos, query, limit); err != nil {
		return nil, fmt.Errorf("list recent photos: %w", err)
	}
	return photos, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*Photo, error) {
	db, err := r.pg.DB(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM photos`
	var photos []*Photo
	if err := db.SelectContext(ctx, &photos, query); err != nil {
		return nil, fmt.Errorf("scan photos: %w", err)
	}
	return photos, nil
}
