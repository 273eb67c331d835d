package lang

import "errors"

// Sentinel errors for the language registry (spec.md §4.A), kept in the
// teacher's flat-sentinel-table shape (grammar/semantic_error.go) but
// renamed to the exact names spec.md lists.
var (
	ErrDuplicateConstruct        = errors.New("duplicate construct")
	ErrDuplicateSort             = errors.New("duplicate sort")
	ErrDuplicateConstructAndSort = errors.New("a construct and a sort cannot share a name")
	ErrUndefinedConstructOrSort  = errors.New("undefined construct or sort")
	ErrDuplicateLanguage         = errors.New("duplicate language")
	ErrUndefinedLanguage         = errors.New("undefined language")
	ErrMissingNotation           = errors.New("construct has no notation")
	ErrDuplicateNotation         = errors.New("construct already has a notation")
	ErrInvalidNotation           = errors.New("invalid notation")
)
