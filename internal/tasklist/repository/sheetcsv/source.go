// Package sheetcsv loads the task list from a published-spreadsheet CSV
// export. The export URL is public and read-only; writes go back to the
// sheet by other means.
package sheetcsv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist/repository"
	pkgLog "shared-task-tracker/pkg/log"
	"shared-task-tracker/pkg/taskcsv"
)

type implSource struct {
	exportURL  string
	httpClient *http.Client
	l          pkgLog.Logger
	now        func() time.Time
}

// New creates a read-only Source for a published CSV export URL.
func New(exportURL string, l pkgLog.Logger) repository.Source {
	return &implSource{
		exportURL:  exportURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		l:          l,
		now:        time.Now,
	}
}

func (s *implSource) Load(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
	reqURL, err := s.cacheBustedURL()
	if err != nil {
		return nil, taskcsv.Report{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, taskcsv.Report{}, fmt.Errorf("failed to build sheet export request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, taskcsv.Report{}, fmt.Errorf("failed to fetch sheet export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, taskcsv.Report{}, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, taskcsv.Report{}, fmt.Errorf("failed to read sheet export body: %w", err)
	}

	tasks, report, err := taskcsv.Decode(string(body))
	if err != nil {
		return nil, taskcsv.Report{}, fmt.Errorf("sheet export is not CSV: %w", err)
	}

	s.l.Debugf(ctx, "sheetcsv: loaded %d tasks, %d rows skipped", report.Loaded, len(report.Skipped))
	return tasks, report, nil
}

// cacheBustedURL appends a timestamp query parameter so intermediate caches
// never serve a stale export.
func (s *implSource) cacheBustedURL() (string, error) {
	u, err := url.Parse(s.exportURL)
	if err != nil {
		return "", fmt.Errorf("invalid sheet export URL %q: %w", s.exportURL, err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(s.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
