package logger

import "errors"

// ErrUnknownLevel is returned by [ParseLevel] for unsupported level names.
var ErrUnknownLevel = errors.New("unknown log level")
