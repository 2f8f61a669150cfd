package sketch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDocument is matched by every MalformedDocumentError.
var ErrMalformedDocument = errors.New("malformed document")

// MalformedDocumentError reports a document that is missing required fields or does
// not conform to the document schema.
type MalformedDocumentError struct {
	Field    string   // offending field path, empty for schema failures
	Problems []string // individual findings
}

// Malformed builds a MalformedDocumentError for a single field.
func Malformed(field, format string, args ...any) *MalformedDocumentError {
	return &MalformedDocumentError{
		Field:    field,
		Problems: []string{fmt.Sprintf(format, args...)},
	}
}

func (e *MalformedDocumentError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrMalformedDocument.Error())
	if e.Field != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Field)
	}
	if len(e.Problems) > 0 {
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Problems, "; "))
	}
	return sb.String()
}

// Is reports whether target is ErrMalformedDocument.
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}
