package docsift

import "errors"

var (
	// ErrNoDocuments is returned when an analysis is started without any
	// input documents.
	ErrNoDocuments = errors.New("docsift: no input documents")

	// ErrNoSections is returned when no sections could be extracted from
	// any input document.
	ErrNoSections = errors.New("docsift: no sections extracted from any document")
)
