package photo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invitewall/invitewall-api/internal/config"
	"github.com/invitewall/invitewall-api/internal/pkg/datauri"
)

// GalleryLimit caps the wall at the most recent uploads.
const GalleryLimit = 50

// UploadInput carries one multipart submission after the adapter has read
// the file into memory.
type UploadInput struct {
	FileName    string
	UserName    string
	Description string
	ContentType string
	Data        []byte
}

// Service handles photo business logic
type Service struct {
	repo           Repository
	maxUploadBytes int64
}

// NewService creates photo service
func NewService(repo Repository, maxUploadBytes int64) *Service {
	if maxUploadBytes <= 0 {
		maxUploadBytes = config.DefaultMaxUploadBytes
	}
	return &Service{
		repo:           repo,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload validates the submission, encodes the image and persists the record.
func (s *Service) Upload(ctx context.Context, in *UploadInput) (*Photo, error) {
	if len(in.Data) == 0 {
		return nil, ErrNoFile
	}

	userName := strings.TrimSpace(in.UserName)
	if userName == "" {
		return nil, ErrUserNameRequired
	}

	if int64(len(in.Data)) > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	photo := &Photo{
		ID:          uuid.New(),
		FileName:    in.FileName,
		UserName:    userName,
		Description: in.Description,
		ImageData:   datauri.Encode(in.Data, in.ContentType),
		MimeType:    in.ContentType,
		SizeBytes:   int64(len(in.Data)),
		UploadedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

// Gallery returns the most recent uploads, newest first.
func (s *Service) Gallery(ctx context.Context) ([]*GalleryItem, error) {
	photos, err := s.repo.ListRecent(ctx, GalleryLimit)
	if err != nil {
		return nil, err
	}

	items := make([]*GalleryItem, len(photos))
	for i, p := range photos {
		items[i] = GalleryItemFromEntity(p)
	}
	return items, nil
}

// Stats recomputes wall statistics from a full scan on every call. Fine at
// event scale; revisit only if the wall outgrows a single party.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	photos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &StatsResponse{TotalPhotos: len(photos)}

	users := make(map[string]struct{}, len(photos))
	var latest *Photo
	for _, p := range photos {
		users[p.UserName] = struct{}{}
		stats.TotalSize += p.SizeBytes
		if latest == nil || p.Seq > latest.Seq {
			latest = p
		}
	}
	stats.TotalUsers = len(users)
	if latest != nil {
		t := latest.UploadedAt
		stats.LatestPhoto = &t
	}

	return stats, nil
}
