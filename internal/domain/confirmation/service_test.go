package confirmation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invitewall/invitewall-api/internal/pkg/ledger"
)

// repoStub is an in-memory Repository
type repoStub struct {
	records   []*Confirmation
	createErr error
	listErr   error
}

func (r *repoStub) Create(_ context.Context, c *Confirmation) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.Seq = int64(len(r.records) + 1)
	r.records = append(r.records, c)
	return nil
}

func (r *repoStub) ListRecent(_ context.Context) ([]*Confirmation, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*Confirmation, len(r.records))
	for i, c := range r.records {
		out[len(r.records)-1-i] = c
	}
	return out, nil
}

// ledgerStub records appended rows
type ledgerStub struct {
	rows      []ledger.ConfirmationRow
	appendErr error
}

func (l *ledgerStub) Enabled() bool { return true }

func (l *ledgerStub) Append(_ context.Context, row ledger.ConfirmationRow) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	l.rows = append(l.rows, row)
	return nil
}

func submitRequest(companions int) *SubmitRequest {
	return &SubmitRequest{
		Nombre:       "Ana García",
		Acompanantes: &companions,
		Mensaje:      "Sí, asistiré",
		Telefono:     "+34 600 111 222",
	}
}

func TestSubmit(t *testing.T) {
	repo := &repoStub{}
	lw := &ledgerStub{}
	svc := NewService(repo, lw)

	result, err := svc.Submit(context.Background(), submitRequest(2))
	require.NoError(t, err)

	assert.True(t, result.PrimaryPersisted)
	assert.True(t, result.MirrorPersisted)
	assert.Equal(t, "¡Gracias Ana García! Tu confirmación ha sido registrada exitosamente.", result.Message)

	require.Len(t, repo.records, 1)
	stored := repo.records[0]
	assert.Equal(t, "Ana García", stored.Name)
	assert.Equal(t, "+34 600 111 222", stored.Phone)
	assert.Equal(t, 2, stored.Companions)
	assert.Equal(t, StatusYes, stored.Status)
	assert.False(t, stored.ConfirmedAt.IsZero())

	require.Len(t, lw.rows, 1)
	row := lw.rows[0]
	assert.Equal(t, "Ana García", row.Name)
	assert.Equal(t, string(StatusYes), row.Attendance)
	assert.Equal(t, 2, row.Companions)
	assert.Equal(t, stored.ConfirmedAt, row.Timestamp)
}

func TestSubmitZeroCompanionsIsValid(t *testing.T) {
	repo := &repoStub{}
	svc := NewService(repo, &ledgerStub{})

	req := submitRequest(0)
	req.Mensaje = ""

	result, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.MirrorPersisted)
	assert.Equal(t, StatusPending, repo.records[0].Status)
}

func TestSubmitStorageFailure(t *testing.T) {
	repo := &repoStub{createErr: fmt.Errorf("insert confirmation: connection refused")}
	lw := &ledgerStub{}
	svc := NewService(repo, lw)

	result, err := svc.Submit(context.Background(), submitRequest(1))
	require.Error(t, err)

	assert.False(t, result.PrimaryPersisted)
	assert.False(t, result.MirrorPersisted)
	// The mirror must not be touched when the primary write fails.
	assert.Empty(t, lw.rows)
}

func TestSubmitLedgerFailureAfterPrimaryInsert(t *testing.T) {
	repo := &repoStub{}
	lw := &ledgerStub{appendErr: fmt.Errorf("%w: append: timeout", ledger.ErrUnavailable)}
	svc := NewService(repo, lw)

	result, err := svc.Submit(context.Background(), submitRequest(3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ledger.ErrUnavailable))

	// The request failed, yet the primary record exists and is visible to
	// subsequent listings. This inconsistency is the documented policy.
	assert.True(t, result.PrimaryPersisted)
	assert.False(t, result.MirrorPersisted)

	listing, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	require.Len(t, listing.Confirmaciones, 1)
	assert.Equal(t, result.Confirmation.ID, listing.Confirmaciones[0].ID)
}

func TestListTotals(t *testing.T) {
	repo := &repoStub{}
	svc := NewService(repo, &ledgerStub{})

	for i, companions := range []int{0, 2, 5} {
		repo.records = append(repo.records, &Confirmation{
			Name:        fmt.Sprintf("Invitado %d", i),
			Phone:       "600000000",
			Companions:  companions,
			Status:      StatusPending,
			ConfirmedAt: time.Now(),
			Seq:         int64(i + 1),
		})
	}

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Estadisticas.TotalConfirmaciones)
	assert.Equal(t, 7, resp.Estadisticas.TotalAcompanantes)
	assert.Equal(t, 10, resp.Estadisticas.TotalPersonas)

	// Most recent first.
	assert.Equal(t, "Invitado 2", resp.Confirmaciones[0].Name)
	assert.Equal(t, "Invitado 0", resp.Confirmaciones[2].Name)
}

func TestListEmpty(t *testing.T) {
	svc := NewService(&repoStub{}, &ledgerStub{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, resp.Confirmaciones)
	assert.Empty(t, resp.Confirmaciones)
	assert.Equal(t, Totals{}, resp.Estadisticas)
}
