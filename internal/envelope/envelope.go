package envelope

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
)

const (
	StatusOK = "OK"

	fieldSeparator = ","
	lineSeparator  = "\n"
	quote          = `"`
)

// Status is the first line of every payload.
type Status struct {
	Code        string
	Description string
}

// Envelope separates the status line of a payload from its data records.
// Records are kept verbatim, field splitting is left to the caller.
type Envelope struct {
	Status  Status
	Records []string
}

// Decode - splits a raw payload into its status line and raw records.
func Decode(raw string) (*Envelope, error) {
	lines := strings.Split(raw, lineSeparator)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty payload", apperror.ErrMalformedEnvelope)
	}

	code, description, found := strings.Cut(strings.TrimSuffix(lines[0], "\r"), fieldSeparator)
	if !found {
		return nil, fmt.Errorf("%w: status line %q has no separator", apperror.ErrMalformedEnvelope, lines[0])
	}

	return &Envelope{
		Status: Status{
			Code:        Unquote(code),
			Description: Unquote(description),
		},
		Records: lines[1:],
	}, nil
}

// OK reports whether the service accepted the request.
func (that *Envelope) OK() bool {
	return that.Status.Code == StatusOK
}

// Rows - returns the field-split records, skipping blank lines.
func (that *Envelope) Rows() [][]string {
	rows := make([][]string, 0, len(that.Records))

	for _, record := range that.Records {
		if strings.TrimSpace(record) == "" {
			continue
		}

		rows = append(rows, Fields(record))
	}

	return rows
}

// Fields - splits one record on commas and unquotes every field.
func Fields(record string) []string {
	fields := strings.Split(strings.TrimSuffix(record, "\r"), fieldSeparator)
	for i, field := range fields {
		fields[i] = Unquote(field)
	}

	return fields
}

// Unquote - strips a single layer of surrounding double quotes, if present.
func Unquote(field string) string {
	field = strings.TrimPrefix(field, quote)
	return strings.TrimSuffix(field, quote)
}
