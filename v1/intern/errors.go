// Copyright 2026 The Lexicon Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"errors"
	"fmt"
)

const (
	// InternalErr indicates an unspecified internal error.
	InternalErr = "intern_internal_error"

	// UnknownSymErr indicates a handle that was not issued by the interner
	// it was presented to, or is otherwise out of range.
	UnknownSymErr = "intern_unknown_sym_error"
)

// Error is the error type returned by interner implementations.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (err *Error) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("%v: %v", err.Code, err.Message)
	}
	return err.Code
}

// NewUnknownSymError returns an error indicating that sym was not issued by
// the interner it was presented to.
func NewUnknownSymError(sym Sym) *Error {
	return &Error{
		Code:    UnknownSymErr,
		Message: fmt.Sprintf("unknown sym %v", sym),
	}
}

// IsUnknownSym reports whether err indicates a handle the interner did not
// issue.
func IsUnknownSym(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == UnknownSymErr
}
