// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperror

import (
	"errors"
	"fmt"
)

// AppError is an error classified by [Kind]. Detail is a static description
// of what failed; Err optionally carries the underlying cause.
type AppError struct {
	Kind   Kind
	Detail string
	Err    error
}

// New creates an [*AppError] of the given kind without a cause.
func New(kind Kind, detail string) *AppError {
	return &AppError{Kind: kind, Detail: detail}
}

// Wrap creates an [*AppError] of the given kind around err.
func Wrap(kind Kind, detail string, err error) *AppError {
	return &AppError{Kind: kind, Detail: detail, Err: err}
}

// Error renders "<kind prefix>: <detail>", followed by ": <cause>" when a
// cause is present.
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind.Prefix(), e.Detail)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an [*AppError] of the same kind with the same
// detail, so package-level AppError values can be used as sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Detail == t.Detail
}

// KindOf returns the kind of the first [*AppError] in err's chain.
// Errors outside the taxonomy are reported as [Generic] with ok set to false.
func KindOf(err error) (kind Kind, ok bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return Generic, false
}
