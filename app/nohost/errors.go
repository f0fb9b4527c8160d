package nohost

import (
	"errors"
	"fmt"
)

var (
	ErrNilResponse = errors.New("handler returned nil response")
	ErrNilStorage  = errors.New("storage cannot be nil")
	ErrNilLogger   = errors.New("logger cannot be nil")
)

func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
