// Package githubfile round-trips the CSV file through a source-control
// hosted repository: unauthenticated raw reads, token-authenticated
// conditional writes.
package githubfile

import (
	"context"
	"fmt"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist/repository"
	pkgLog "shared-task-tracker/pkg/log"
	"shared-task-tracker/pkg/taskcsv"
)

const commitMessage = "Update task list"

type implSource struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a writable Source backed by one file in a GitHub repository.
func New(client *Client, l pkgLog.Logger) repository.WritableSource {
	return &implSource{client: client, l: l}
}

func (s *implSource) Load(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
	content, err := s.client.GetRaw(ctx)
	if err != nil {
		return nil, taskcsv.Report{}, err
	}

	tasks, report, err := taskcsv.Decode(content)
	if err != nil {
		return nil, taskcsv.Report{}, fmt.Errorf("hosted file is not CSV: %w", err)
	}

	s.l.Debugf(ctx, "githubfile: loaded %d tasks, %d rows skipped", report.Loaded, len(report.Skipped))
	return tasks, report, nil
}

// Save encodes the list and performs a conditional create-or-replace: the
// current content hash is fetched first and presented as the update
// precondition.
func (s *implSource) Save(ctx context.Context, tasks []model.Task, token string) error {
	if token == "" {
		return repository.ErrTokenRequired
	}

	sha, err := s.client.GetSHA(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to read current file hash: %w", err)
	}

	if err := s.client.PutFile(ctx, token, taskcsv.Encode(tasks), commitMessage, sha); err != nil {
		return err
	}

	s.l.Infof(ctx, "githubfile: saved %d tasks", len(tasks))
	return nil
}
