package table

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfiguration is matched by every *InvalidConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNoRenderer is returned by End when the table has no rendering engine.
	ErrNoRenderer = errors.New("table has no rendering engine")

	// ErrAlreadyEnded is returned by End on a table that was already ended.
	ErrAlreadyEnded = errors.New("table already ended")
)

// Property names used in validation errors
const (
	fieldFontSize   = "font size"
	fieldFontWeight = "font weight"
	fieldWidth      = "width"
	fieldMinHeight  = "min height"
	fieldImage      = "image"
	fieldColspan    = "colspan"
	fieldPadding    = "padding"
)

// InvalidConfigurationError describes a rejected property value.
type InvalidConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s '%v': %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

func invalid(field string, value any, reason string) *InvalidConfigurationError {
	return &InvalidConfigurationError{Field: field, Value: value, Reason: reason}
}

// rejection is a validation error pending on one property of one table,
// row or cell.
type rejection struct {
	owner any
	err   *InvalidConfigurationError
}

func isNumeric(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkFontSize(v float64) *InvalidConfigurationError {
	if !isNumeric(v) {
		return invalid(fieldFontSize, v, "must be numeric")
	}
	if v <= 0 {
		return invalid(fieldFontSize, v, "must be greater than zero")
	}
	return nil
}

func checkFontWeight(w FontWeight) *InvalidConfigurationError {
	if !w.Valid() {
		return invalid(fieldFontWeight, w, "must be normal or bold")
	}
	return nil
}

func checkLength(field string, v float64) *InvalidConfigurationError {
	if !isNumeric(v) {
		return invalid(field, v, "must be numeric")
	}
	if v < 0 {
		return invalid(field, v, "must not be negative")
	}
	return nil
}
