// Package sheetapi reads the task sheet through the Google Sheets API with
// service-account credentials, for deployments where the sheet is not
// published as a CSV export.
package sheetapi

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist/repository"
	pkgLog "shared-task-tracker/pkg/log"
	"shared-task-tracker/pkg/taskcsv"
)

type implSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
	l             pkgLog.Logger
}

// NewFromCredentialsFile creates a read-only Source from a Service Account
// JSON file path.
func NewFromCredentialsFile(ctx context.Context, credentialsPath, spreadsheetID, readRange string, l pkgLog.Logger) (repository.Source, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return newSource(svc, spreadsheetID, readRange, l), nil
}

// NewFromHTTP creates a Source from a pre-configured HTTP client and
// endpoint. Used by tests.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, endpoint, spreadsheetID, readRange string, l pkgLog.Logger) (repository.Source, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return newSource(svc, spreadsheetID, readRange, l), nil
}

func newSource(svc *sheets.Service, spreadsheetID, readRange string, l pkgLog.Logger) repository.Source {
	return &implSource{
		service:       svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		l:             l,
	}
}

func (s *implSource) Load(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, taskcsv.Report{}, fmt.Errorf("failed to read sheet values: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	tasks, report := taskcsv.DecodeRows(rows)
	s.l.Debugf(ctx, "sheetapi: loaded %d tasks, %d rows skipped", report.Loaded, len(report.Skipped))
	return tasks, report, nil
}
