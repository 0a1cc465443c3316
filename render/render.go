package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/gibset/dataset"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"

	Defaultformat = FormatCSV
)

var ErrMalformedRecord = errors.New("malformed record")

func SupportedFormats() []string {
	return []string{FormatCSV, FormatJSON}
}

// Renderer writes dataset records to an output stream.
type Renderer interface {
	Render(r dataset.Record) error

	// Flush writes any buffered data to the underlying writer.
	Flush() error
}

// New returns the renderer for format.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case FormatCSV:
		return NewCSVRenderer(w), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	}

	return nil, fmt.Errorf("unknown format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// CSVRenderer writes records as `"<text>",<label>` lines. The text is not
// escaped.
type CSVRenderer struct {
	w *bufio.Writer
}

func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{w: bufio.NewWriter(w)}
}

func (r *CSVRenderer) Render(rec dataset.Record) error {
	_, err := r.w.WriteString(FormatRecord(rec) + "\n")
	return err
}

func (r *CSVRenderer) Flush() error {
	return r.w.Flush()
}

// FormatRecord returns the CSV line of rec without line terminator.
func FormatRecord(rec dataset.Record) string {
	return fmt.Sprintf(`"%s",%d`, rec.Text, int(rec.Label))
}

// ParseRecord parses a line written by CSVRenderer. The label is everything
// after the last comma, so the text may contain commas and quotes.
func ParseRecord(line string) (dataset.Record, error) {
	idx := strings.LastIndexByte(line, ',')
	if idx < 0 {
		return dataset.Record{}, fmt.Errorf("%w: no label separator", ErrMalformedRecord)
	}

	text, label := line[:idx], line[idx+1:]
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return dataset.Record{}, fmt.Errorf("%w: text is not quoted", ErrMalformedRecord)
	}

	rec := dataset.Record{Text: text[1 : len(text)-1]}
	switch label {
	case "1":
		rec.Label = dataset.Valid
	case "0":
		rec.Label = dataset.Invalid
	default:
		return dataset.Record{}, fmt.Errorf("%w: label %q", ErrMalformedRecord, label)
	}

	return rec, nil
}

// Scan calls fn for each CSV record of r. lineNo starts at 1.
func Scan(r io.Reader, fn func(lineNo int, rec dataset.Record) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := ParseRecord(strings.TrimSuffix(scanner.Text(), "\r"))
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if err := fn(lineNo, rec); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// compile-time interface check
var _ Renderer = (*CSVRenderer)(nil)
