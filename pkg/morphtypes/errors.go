// This file contains the typed error taxonomy of the library. Every failing
// parse surfaces exactly one *Error carrying the error kind, the file path,
// the 1-based source line (0 when no line applies), and a message describing
// what was expected versus what was found.
package morphtypes

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a morphology error.
type ErrorKind int

const (
	// KindRawData is malformed lexical or syntactic input: a bad token, a bad
	// numeric literal, unbalanced parentheses, or unexpected end of input.
	KindRawData ErrorKind = iota
	// KindIDSequence means explicit section or point identifiers violate
	// uniqueness or contiguity. Sub-kind of KindRawData.
	KindIDSequence
	// KindMultipleTrees means more than one disconnected root group was found
	// where a single tree is required. Sub-kind of KindRawData.
	KindMultipleTrees
	// KindMissingParent means a child references a parent that does not
	// exist. Sub-kind of KindRawData.
	KindMissingParent
	// KindSectionBuilder covers the remaining structural violations: empty
	// sections and point/diameter/perimeter length mismatches. Sub-kind of
	// KindRawData.
	KindSectionBuilder
	// KindSoma is an invalid soma definition, such as a wrong point count for
	// the declared soma type.
	KindSoma
	// KindUnknownFormat means the content was not recognized by any reader.
	KindUnknownFormat
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindRawData:
		return "raw data error"
	case KindIDSequence:
		return "ID sequence error"
	case KindMultipleTrees:
		return "multiple trees error"
	case KindMissingParent:
		return "missing parent error"
	case KindSectionBuilder:
		return "section builder error"
	case KindSoma:
		return "soma error"
	case KindUnknownFormat:
		return "unknown format error"
	default:
		return "error"
	}
}

// Error is the single diagnostic type of the library. The first Error
// detected during a parse is fatal to that parse; no partial result is
// returned alongside it.
type Error struct {
	Kind ErrorKind
	Path string
	Line int
	Msg  string
}

// Error renders the diagnostic as "kind: path:line: message".
func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s: %s:%d: %s", e.Kind, e.Path, e.Line, e.Msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("%s: line %d: %s", e.Kind, e.Line, e.Msg)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

// NewError builds an Error of the given kind.
func NewError(kind ErrorKind, path string, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// kindOf extracts the kind of err, reporting whether err is a library error.
func kindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsRawData reports whether err is a raw-data error or one of its sub-kinds
// (ID sequence, multiple trees, missing parent, section builder).
func IsRawData(err error) bool {
	switch k, ok := kindOf(err); {
	case !ok:
		return false
	default:
		return k == KindRawData || k == KindIDSequence || k == KindMultipleTrees ||
			k == KindMissingParent || k == KindSectionBuilder
	}
}

// IsIDSequence reports whether err is an ID sequence error.
func IsIDSequence(err error) bool { k, ok := kindOf(err); return ok && k == KindIDSequence }

// IsMultipleTrees reports whether err is a multiple trees error.
func IsMultipleTrees(err error) bool { k, ok := kindOf(err); return ok && k == KindMultipleTrees }

// IsMissingParent reports whether err is a missing parent error.
func IsMissingParent(err error) bool { k, ok := kindOf(err); return ok && k == KindMissingParent }

// IsSectionBuilder reports whether err is a section builder error.
func IsSectionBuilder(err error) bool { k, ok := kindOf(err); return ok && k == KindSectionBuilder }

// IsSoma reports whether err is a soma error.
func IsSoma(err error) bool { k, ok := kindOf(err); return ok && k == KindSoma }

// IsUnknownFormat reports whether err is an unknown format error.
func IsUnknownFormat(err error) bool { k, ok := kindOf(err); return ok && k == KindUnknownFormat }
