// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package wordpress

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a FetchError. It is informational only: every kind is
// surfaced to users the same way.
type ErrorKind string

const (
	ErrKindNetwork ErrorKind = "network"
	ErrKindStatus  ErrorKind = "status"
	ErrKindDecode  ErrorKind = "decode"
)

// FetchError is returned for any failed projects request.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int // set for ErrKindStatus
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case ErrKindStatus:
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	case ErrKindDecode:
		return fmt.Sprintf("malformed response body: %v", e.Err)
	default:
		return fmt.Sprintf("network error: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the FetchError kind wrapped in err, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
