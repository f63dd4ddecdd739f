// Package export mirrors ledger changes into a Google Sheets spreadsheet.
// It is driven by the sync worker, never by the request path.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/wosadvpro-arch/finance-buddy/internal/event"
	"github.com/wosadvpro-arch/finance-buddy/internal/session"
)

type SheetsExporter struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsExporterFromEnv creates an exporter using environment variables.
// Required: GOOGLE_SPREADSHEET_ID plus service account credentials via
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS. Optional: GOOGLE_SHEET_NAME (default
// "Transactions").
func NewSheetsExporterFromEnv(ctx context.Context) (*SheetsExporter, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Transactions"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &SheetsExporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// HandleChange appends one row per created/updated transaction. Deletions
// are appended as tombstone rows so the sheet stays an audit trail rather
// than a mirror that needs row lookups.
func (e *SheetsExporter) HandleChange(ctx context.Context, msg *event.LedgerChangeMessage) error {
	tx := msg.Transaction
	var row []interface{}
	switch msg.Op {
	case session.OpCreated, session.OpUpdated:
		row = []interface{}{
			msg.Timestamp.Format("2006-01-02 15:04:05"),
			msg.AccountKey,
			msg.Op,
			tx.ID,
			tx.Date.String(),
			string(tx.Type),
			tx.Category,
			tx.Desc,
			tx.Amount.String(),
		}
	case session.OpDeleted:
		row = []interface{}{
			msg.Timestamp.Format("2006-01-02 15:04:05"),
			msg.AccountKey,
			msg.Op,
			tx.ID,
			"", "", "", "", "",
		}
	default:
		slog.WarnContext(ctx, "Unknown ledger change op, skipping", "op", msg.Op)
		return nil
	}

	valueRange := &gsheet.ValueRange{Values: [][]interface{}{row}}
	_, err := e.svc.Spreadsheets.Values.
		Append(e.spreadsheetID, e.sheetName+"!A:I", valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	slog.InfoContext(ctx, "Exported ledger change to sheet",
		"account", msg.AccountKey, "op", msg.Op, "tx_id", tx.ID)
	return nil
}
