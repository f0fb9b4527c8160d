package inline

import (
	"errors"
	"fmt"
)

// ErrMissingResource is returned when a referenced resource does not exist.
// Missing resources are skipped silently.
var ErrMissingResource = errors.New("inline: resource not found")

// ReadError reports a resource that exists but could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("inline: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// StylesheetError reports a stylesheet whose url() references could not all
// be fetched. No partial substitution is ever returned with it.
type StylesheetError struct {
	Stylesheet string
	Ref        string
	Err        error
}

func (e *StylesheetError) Error() string {
	return fmt.Sprintf("inline: failed on %s: url(%s): %v", e.Stylesheet, e.Ref, e.Err)
}

func (e *StylesheetError) Unwrap() error { return e.Err }
