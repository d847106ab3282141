// Package table turns comma-separated text into an aligned plain-text table.
package table

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	fieldSeparator  = " | "
	columnSeparator = "-+-"
)

var ErrEmptyTable = errors.New("no valid data rows found in CSV")

// Table is the parsed form of comma-separated input.
// Rows keep their own length, they are not normalised to the header length.
type Table struct {
	Header []string
	Rows   [][]string
	// Skipped counts the records dropped because their quoting could not be parsed.
	Skipped int
}

// Parse reads raw as comma-separated records. The first record is the header, the others are rows.
// Fields are trimmed of surrounding whitespace. Records that cannot be parsed are skipped.
// ErrEmptyTable is returned when no row is left.
func Parse(raw string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}

		return nil, errors.Wrapf(ErrEmptyTable, "unable to read header: %s", err)
	}

	tbl := &Table{Header: trimFields(header)}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				tbl.Skipped++

				continue
			}

			return nil, errors.Wrap(err, "unable to read record")
		}

		tbl.Rows = append(tbl.Rows, trimFields(record))
	}

	if len(tbl.Rows) == 0 {
		return nil, ErrEmptyTable
	}

	return tbl, nil
}

func trimFields(record []string) []string {
	fields := make([]string, len(record))
	for i, field := range record {
		fields[i] = strings.TrimSpace(field)
	}

	return fields
}

// Widths returns, for each header column, the largest character count among the header
// field and the fields of that column. Fields beyond the header length are ignored.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.Header))
	for i, name := range t.Header {
		widths[i] = utf8.RuneCountInString(name)
	}

	for _, row := range t.Rows {
		for i, field := range row {
			if i >= len(widths) {
				break
			}

			widths[i] = max(widths[i], utf8.RuneCountInString(field))
		}
	}

	return widths
}

// Render writes the header, a dashed separator and every row, one per line.
// Missing fields are rendered empty and extra fields are dropped.
func (t *Table) Render(wrt io.Writer) error {
	widths := t.Widths()

	var builder strings.Builder

	writeLine(&builder, t.Header, widths)

	for i, width := range widths {
		if i > 0 {
			builder.WriteString(columnSeparator)
		}

		builder.WriteString(strings.Repeat("-", width))
	}

	builder.WriteByte('\n')

	for _, row := range t.Rows {
		writeLine(&builder, row, widths)
	}

	_, err := io.WriteString(wrt, builder.String())

	return errors.Wrap(err, "unable to write table")
}

func writeLine(builder *strings.Builder, fields []string, widths []int) {
	for i, width := range widths {
		if i > 0 {
			builder.WriteString(fieldSeparator)
		}

		field := ""
		if i < len(fields) {
			field = fields[i]
		}

		builder.WriteString(field)
		builder.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(field)))
	}

	builder.WriteByte('\n')
}

func (t *Table) String() string {
	var builder strings.Builder

	_ = t.Render(&builder)

	return builder.String()
}

// Format parses raw and renders it as a table.
func Format(raw string) (string, error) {
	tbl, err := Parse(raw)
	if err != nil {
		return "", err
	}

	return tbl.String(), nil
}
