package sheets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"jdservices/config"
	"jdservices/models"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// ErrNotConfigured signals missing server-side credentials. Handlers surface
// it as a generic 500; the detail stays in the logs.
var ErrNotConfigured = errors.New("spreadsheet persistence not configured")

// SheetsSink appends finished submissions to the per-service Google
// spreadsheet, one tab per submission kind.
type SheetsSink struct {
	svc        *sheetsapi.Service
	flooringID string
	cleaningID string
	logger     *zap.Logger
}

// NewSheetsSink authenticates with the base64-encoded service account from
// configuration.
func NewSheetsSink(ctx context.Context, logger *zap.Logger) (*SheetsSink, error) {
	encoded := config.AppConfig.GoogleServiceAccount
	if encoded == "" {
		return nil, ErrNotConfigured
	}
	creds, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &SheetsSink{
		svc:        svc,
		flooringID: config.AppConfig.SpreadsheetIDFlooring,
		cleaningID: config.AppConfig.SpreadsheetIDCleaning,
		logger:     logger,
	}, nil
}

// Submit ensures the target tab exists and appends the submission row.
func (s *SheetsSink) Submit(ctx context.Context, sub models.EstimateSubmission) error {
	spreadsheetID, err := s.spreadsheetID(sub.Service)
	if err != nil {
		return err
	}
	sheetName := SheetName(sub)

	if err := s.ensureSheet(ctx, spreadsheetID, sheetName); err != nil {
		return fmt.Errorf("failed to prepare sheet %q: %w", sheetName, err)
	}

	values := &sheetsapi.ValueRange{
		Values: [][]interface{}{Row(sub, time.Now())},
	}
	_, err = s.svc.Spreadsheets.Values.
		Append(spreadsheetID, fmt.Sprintf("'%s'!A:Z", sheetName), values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append submission row: %w", err)
	}

	s.logger.Info("submission persisted",
		zap.String("service", string(sub.Service)),
		zap.String("sheet", sheetName),
	)
	return nil
}

func (s *SheetsSink) spreadsheetID(service models.Service) (string, error) {
	var id string
	switch service {
	case models.ServiceFlooring:
		id = s.flooringID
	case models.ServiceCleaning:
		id = s.cleaningID
	}
	if id == "" {
		return "", ErrNotConfigured
	}
	return id, nil
}

// ensureSheet creates the named tab when the spreadsheet doesn't have it yet.
func (s *SheetsSink) ensureSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	meta, err := s.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return err
	}
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return nil
		}
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: sheetName},
			},
		}},
	}).Context(ctx).Do()
	return err
}
