package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/share_register/internal/core/domain"
)

// Format selects the export representation.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DefaultDelimiter is the field separator used by Swedish spreadsheet software.
const DefaultDelimiter = ';'

// ParseFormat maps a query value to a Format. Anything other than "csv" falls back to JSON.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatCSV)) {
		return FormatCSV
	}
	return FormatJSON
}

// ContentType returns the MIME type of the rendered document.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// Extension returns the file extension used in download file names.
func (f Format) Extension() string {
	return string(f)
}

// Document is what gets exported: a computed snapshot and the ledger history behind it.
type Document struct {
	CapTable     domain.CapTableSummary    `json:"capTable"`
	Transactions []domain.ShareTransaction `json:"transactions"`
}

// Formatter renders Documents. It holds no state besides its settings and is safe for concurrent use.
type Formatter struct {
	delimiter rune
}

// NewFormatter creates a Formatter writing CSV with the given delimiter.
// A zero delimiter selects DefaultDelimiter.
func NewFormatter(delimiter rune) *Formatter {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Formatter{delimiter: delimiter}
}

// Render serializes doc in the requested format.
func (f *Formatter) Render(format Format, doc Document) ([]byte, error) {
	if doc.Transactions == nil {
		doc.Transactions = []domain.ShareTransaction{}
	}
	switch format {
	case FormatCSV:
		return f.renderCSV(doc)
	default:
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal export document: %w", err)
		}
		return out, nil
	}
}
