package render

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/revelaction/gibset/dataset"
)

// JSONRenderer writes records as JSON lines.
type JSONRenderer struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONRenderer{w: bw, enc: enc}
}

// Render serializes one record as a JSON object on its own line.
func (r *JSONRenderer) Render(rec dataset.Record) error {
	return r.enc.Encode(rec)
}

func (r *JSONRenderer) Flush() error {
	return r.w.Flush()
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
