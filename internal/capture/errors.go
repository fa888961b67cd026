// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"errors"
	"fmt"
)

// ErrAlreadyConsumed is returned by [Captured.Bytes] once the buffer has
// been handed over by [Captured.Reader].
var ErrAlreadyConsumed = errors.New("captured body already consumed")

// Error reports a failure to drain a body. Direction is the label passed to
// the capture call ("request" or "response").
type Error struct {
	Direction string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to read %s body: %v", e.Direction, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
