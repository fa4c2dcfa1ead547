package confirmation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/invitewall/invitewall-api/internal/pkg/ledger"
)

// LedgerWriter mirrors a confirmation into the organizers' sheet.
type LedgerWriter interface {
	Enabled() bool
	Append(ctx context.Context, row ledger.ConfirmationRow) error
}

// SubmitResult reports the two writes independently. On a mirror failure the
// caller receives an error AND PrimaryPersisted=true: the record exists in
// the database even though the request as a whole is reported as failed.
type SubmitResult struct {
	Confirmation     *Confirmation
	Message          string
	PrimaryPersisted bool
	MirrorPersisted  bool
}

// Service handles confirmation business logic
type Service struct {
	repo   Repository
	ledger LedgerWriter
}

// NewService creates confirmation service
func NewService(repo Repository, ledgerWriter LedgerWriter) *Service {
	return &Service{
		repo:   repo,
		ledger: ledgerWriter,
	}
}

// Submit persists a confirmation to the database, then mirrors it to the
// sheet. There is no transaction across the two stores: a database failure
// aborts before the sheet is touched, while a sheet failure fails the whole
// request even though the database row already exists. No retry path exists
// for a failed mirror write.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	c := &Confirmation{
		ID:          uuid.New(),
		Name:        req.Nombre,
		Phone:       req.Telefono,
		Companions:  *req.Acompanantes,
		Message:     req.Mensaje,
		Status:      DeriveStatus(req.Mensaje),
		ConfirmedAt: time.Now(),
	}

	result := &SubmitResult{Confirmation: c}

	if err := s.repo.Create(ctx, c); err != nil {
		return result, err
	}
	result.PrimaryPersisted = true

	err := s.ledger.Append(ctx, ledger.ConfirmationRow{
		Timestamp:  c.ConfirmedAt,
		Name:       c.Name,
		Phone:      c.Phone,
		Attendance: string(c.Status),
		Companions: c.Companions,
	})
	if err != nil {
		return result, err
	}
	result.MirrorPersisted = true

	log.Info().
		Str("nombre", c.Name).
		Str("asistencia", string(c.Status)).
		Int("acompanantes", c.Companions).
		Msg("Confirmación registrada")

	result.Message = fmt.Sprintf("¡Gracias %s! Tu confirmación ha sido registrada exitosamente.", c.Name)
	return result, nil
}

// List returns every confirmation, most recent first, with headcount totals.
func (s *Service) List(ctx context.Context) (*ListResponse, error) {
	confirmations, err := s.repo.ListRecent(ctx)
	if err != nil {
		return nil, err
	}
	if confirmations == nil {
		confirmations = []*Confirmation{}
	}

	totals := Totals{TotalConfirmaciones: len(confirmations)}
	for _, c := range confirmations {
		totals.TotalAcompanantes += c.Companions
	}
	totals.TotalPersonas = totals.TotalConfirmaciones + totals.TotalAcompanantes

	return &ListResponse{
		Confirmaciones: confirmations,
		Estadisticas:   totals,
	}, nil
}
