// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperror

import "net/http"

// Kind enumerates the application error categories. The set is closed:
// adding a constant without a matching entry in kinds fails to compile.
type Kind uint8

const (
	Generic Kind = iota
	InvalidInput
	DatabaseError
	NetworkError
	AuthenticationError
	AuthorizationError

	kindCount
)

type kindInfo struct {
	name   string
	status int
	prefix string
}

var kinds = [...]kindInfo{
	Generic:             {"generic", http.StatusInternalServerError, "An error occurred"},
	InvalidInput:        {"invalid_input", http.StatusBadRequest, "Invalid input"},
	DatabaseError:       {"database_error", http.StatusInternalServerError, "Database error"},
	NetworkError:        {"network_error", http.StatusServiceUnavailable, "Network error"},
	AuthenticationError: {"authentication_error", http.StatusUnauthorized, "Authentication failed"},
	AuthorizationError:  {"authorization_error", http.StatusForbidden, "Authorization failed"},
}

// Both conversions overflow uint unless kinds has exactly kindCount entries.
const (
	_ = uint(len(kinds) - int(kindCount))
	_ = uint(int(kindCount) - len(kinds))
)

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Status returns the HTTP status code for k. Unknown values, which can only
// be produced by an explicit conversion, map to 500.
func (k Kind) Status() int {
	if k >= kindCount {
		return http.StatusInternalServerError
	}
	return kinds[k].status
}

// Prefix returns the static descriptive message of k.
func (k Kind) Prefix() string {
	if k >= kindCount {
		return kinds[Generic].prefix
	}
	return kinds[k].prefix
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kinds[k].name
}
