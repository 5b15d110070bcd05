package taskcsv

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"shared-task-tracker/internal/model"
)

// Header is the fixed CSV header row the remote file carries.
const Header = "id,task_name,type,amount,deadline,done,completed_date,person"

const fieldCount = 8

// ErrHTMLDocument is returned when the body looks like an HTML document
// instead of CSV — typically a sheet that is no longer published, or a login
// page served in place of the export.
var ErrHTMLDocument = errors.New("body is an HTML document, not CSV")

// Encode renders the task list as CSV text: header line plus one row per
// task. Free-text fields containing commas or quotes are double-quote
// wrapped with internal quotes doubled.
func Encode(tasks []model.Task) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	w.Write(strings.Split(Header, ","))
	for _, t := range tasks {
		w.Write([]string{
			strconv.Itoa(t.ID),
			t.Name,
			string(t.Kind),
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			t.Deadline,
			strconv.FormatBool(t.Done),
			t.CompletedDate,
			string(t.Owner),
		})
	}
	w.Flush()

	return sb.String()
}

// Decode parses CSV text into tasks. The header line is skipped. Rows with
// fewer than 8 fields are dropped and recorded in the report rather than
// failing the whole load; numeric fields parse permissively (bad id or
// amount becomes 0) with a note in the report. HTML-shaped input is a load
// failure, not something to parse through. Report entries carry physical
// file line numbers, so blank lines (which the reader skips) do not shift
// them.
func Decode(text string) ([]model.Task, Report, error) {
	if isHTMLDocument(text) {
		return nil, Report{}, ErrHTMLDocument
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var (
		tasks   []model.Task
		report  Report
		records int
	)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			report.Skip(line, "unparsable row: "+err.Error())
			continue
		}
		records++
		line, _ := r.FieldPos(0)
		if records == 1 {
			continue // header
		}
		if len(record) < fieldCount {
			report.Skip(line, "expected 8 fields, got "+strconv.Itoa(len(record)))
			continue
		}

		t, notes := decodeRecord(record)
		for _, n := range notes {
			report.Note(line, n)
		}
		tasks = append(tasks, t)
		report.Loaded++
	}

	return tasks, report, nil
}

// DecodeRows maps pre-split rows (e.g. a spreadsheet API value range) into
// tasks with the same permissive semantics as Decode. The first row is
// treated as the header; report entries use 1-based positions within rows.
func DecodeRows(rows [][]string) ([]model.Task, Report) {
	var (
		tasks  []model.Task
		report Report
	)

	for i, record := range rows {
		row := i + 1
		if row == 1 {
			continue // header
		}
		if len(record) < fieldCount {
			report.Skip(row, "expected 8 fields, got "+strconv.Itoa(len(record)))
			continue
		}

		t, notes := decodeRecord(record)
		for _, n := range notes {
			report.Note(row, n)
		}
		tasks = append(tasks, t)
		report.Loaded++
	}

	return tasks, report
}

func decodeRecord(record []string) (model.Task, []string) {
	var notes []string

	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		id = 0
		notes = append(notes, "invalid id "+strconv.Quote(record[0]))
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		amount = 0
		notes = append(notes, "invalid amount "+strconv.Quote(record[3]))
	}

	kind := model.TaskKind(record[2])
	if kind == "" {
		kind = model.KindOther
	}

	return model.Task{
		ID:            id,
		Name:          record[1],
		Kind:          kind,
		Amount:        amount,
		Deadline:      record[4],
		Done:          strings.EqualFold(record[5], "true"),
		CompletedDate: record[6],
		Owner:         model.Owner(record[7]),
	}, notes
}

// isHTMLDocument detects a markup-document preamble.
func isHTMLDocument(text string) bool {
	head := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}
