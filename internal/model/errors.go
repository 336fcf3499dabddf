package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotANumber        = errors.New("value is not a number")
	ErrMalformedEncoding = errors.New("malformed payment encoding")
)

// NodeNotFoundError reports an account index outside [0, N).
type NodeNotFoundError struct {
	Index int
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %d does not exist", e.Index)
}

// ValueOverflowError reports a value that does not fit its target integer type.
type ValueOverflowError struct {
	Type string
	Max  int64
}

func (e *ValueOverflowError) Error() string {
	return fmt.Sprintf("value overflows %s (max %d)", e.Type, e.Max)
}

// IsNodeNotFound reports whether err carries a NodeNotFoundError.
func IsNodeNotFound(err error) bool {
	var target *NodeNotFoundError
	return errors.As(err, &target)
}

// IsValueOverflow reports whether err carries a ValueOverflowError.
func IsValueOverflow(err error) bool {
	var target *ValueOverflowError
	return errors.As(err, &target)
}
