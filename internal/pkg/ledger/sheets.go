// Package ledger mirrors confirmations into a Google Sheet the organizers
// read directly. The sheet is a secondary store: appends only, no reads on
// the request path, and the service keeps running when it is unreachable.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// ErrUnavailable marks every failure to reach the spreadsheet: missing
// credentials, a failed client handshake, or an append that errored.
var ErrUnavailable = errors.New("ledger unavailable")

const timestampLayout = "02/01/2006 15:04:05"

// headerRow matches the six fixed columns organizers expect in the sheet.
var headerRow = []interface{}{"Fecha/Hora", "Nombre", "Teléfono", "Asistencia", "Acompañantes", "Estado"}

// ConfirmationRow is one appended sheet row.
type ConfirmationRow struct {
	Timestamp  time.Time
	Name       string
	Phone      string
	Attendance string
	Companions int
}

func (r ConfirmationRow) cells() []interface{} {
	companions := "Ninguno"
	if r.Companions > 0 {
		companions = strconv.Itoa(r.Companions)
	}
	return []interface{}{
		r.Timestamp.Format(timestampLayout),
		r.Name,
		r.Phone,
		r.Attendance,
		companions,
		"Pendiente", // follow-up status, maintained by hand in the sheet
	}
}

// Config holds spreadsheet coordinates and service-account credentials.
// Credentials are either inline JSON or a key file path.
type Config struct {
	CredentialsJSON string
	CredentialsFile string
	SpreadsheetID   string
	SheetName       string
}

// SheetsWriter appends confirmation rows to the configured sheet. The API
// client is built on first use under an init barrier; the outcome of that
// single attempt is final for the process.
type SheetsWriter struct {
	cfg Config

	once sync.Once
	svc  *sheets.Service
	err  error
}

// NewSheetsWriter creates the writer without performing any I/O.
func NewSheetsWriter(cfg Config) *SheetsWriter {
	return &SheetsWriter{cfg: cfg}
}

// Enabled reports whether the writer has enough configuration to attempt
// appends. When false every Append fails fast with ErrUnavailable.
func (w *SheetsWriter) Enabled() bool {
	return w.cfg.SpreadsheetID != "" && (w.cfg.CredentialsJSON != "" || w.cfg.CredentialsFile != "")
}

func (w *SheetsWriter) service(ctx context.Context) (*sheets.Service, error) {
	if !w.Enabled() {
		return nil, fmt.Errorf("%w: no credentials configured", ErrUnavailable)
	}

	w.once.Do(func() {
		opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
		if w.cfg.CredentialsJSON != "" {
			opts = append(opts, option.WithCredentialsJSON([]byte(w.cfg.CredentialsJSON)))
		} else {
			opts = append(opts, option.WithCredentialsFile(w.cfg.CredentialsFile))
		}

		w.svc, w.err = sheets.NewService(context.WithoutCancel(ctx), opts...)
		if w.err == nil {
			log.Info().Str("spreadsheet_id", w.cfg.SpreadsheetID).Msg("Google Sheets client initialized")
		}
	})
	if w.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, w.err)
	}
	return w.svc, nil
}

func (w *SheetsWriter) appendRange() string {
	return w.cfg.SheetName + "!A:F"
}

// Append writes one row after any existing data, in submission order.
func (w *SheetsWriter) Append(ctx context.Context, row ConfirmationRow) error {
	svc, err := w.service(ctx)
	if err != nil {
		return err
	}

	body := &sheets.ValueRange{Values: [][]interface{}{row.cells()}}
	_, err = svc.Spreadsheets.Values.Append(w.cfg.SpreadsheetID, w.appendRange(), body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: append: %v", ErrUnavailable, err)
	}
	return nil
}

// EnsureHeader writes the column header row when the sheet is still empty.
// Called best-effort at startup; appends do not depend on it.
func (w *SheetsWriter) EnsureHeader(ctx context.Context) error {
	svc, err := w.service(ctx)
	if err != nil {
		return err
	}

	headerRange := w.cfg.SheetName + "!A1:F1"
	resp, err := svc.Spreadsheets.Values.Get(w.cfg.SpreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: read header: %v", ErrUnavailable, err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	body := &sheets.ValueRange{Values: [][]interface{}{headerRow}}
	_, err = svc.Spreadsheets.Values.Update(w.cfg.SpreadsheetID, headerRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: write header: %v", ErrUnavailable, err)
	}

	log.Info().Msg("Sheet header initialized")
	return nil
}
