// Package sheets appends contact submissions to a Google Sheets log.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/luminainteriors/lumina-be/internal/models"
)

// Appender appends one row per non-spam contact submission.
type Appender struct {
	service       *gsheets.Service
	spreadsheetID string
	appendRange   string
}

// New builds an appender from a service-account credentials file.
func New(ctx context.Context, credentialsFile, spreadsheetID, appendRange string) (*Appender, error) {
	service, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	return &Appender{
		service:       service,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
	}, nil
}

// AppendContact writes one submission row to the configured range.
func (a *Appender) AppendContact(ctx context.Context, details models.ContactDetails, service, budget string, submittedAt time.Time) error {
	row := []any{
		submittedAt.Format(time.RFC3339),
		details.Name,
		details.Email,
		details.Phone,
		service,
		budget,
		details.Message,
	}
	_, err := a.service.Spreadsheets.Values.
		Append(a.spreadsheetID, a.appendRange, &gsheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append contact row: %w", err)
	}
	return nil
}
