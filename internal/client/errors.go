package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patrickayoup/gobunpro/pkg/validator"
)

const (
	MinLimit = 1
	MaxLimit = 50
)

var (
	ErrAPIKeyRequired  = errors.New("a Bunpro API key is required, see https://bunpro.jp/api for more info")
	ErrLimitOutOfRange = errors.New("limit out of range")
)

type LimitError struct {
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit must be between %d and %d, got %d", MinLimit, MaxLimit, e.Limit)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrLimitOutOfRange
}

// APIError is returned when Bunpro answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("bunpro api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("bunpro api returned status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// SchemaError reports which part of a response failed validation.
type SchemaError struct {
	Section string
	Err     *validator.ValidationError
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Section, strings.Join(e.Err.Messages(), "; "))
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func newSchemaError(section string, err error) error {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return &SchemaError{Section: section, Err: vErr}
	}
	return fmt.Errorf("failed to parse %s: %w", section, err)
}
