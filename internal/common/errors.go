// Package common defines shared constants and sentinel errors used across
// the ClauseCraft client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// ErrNotFound is returned by repositories for a missing key or record.
	ErrNotFound = errors.New("not found")
)
