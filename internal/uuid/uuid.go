// Package uuid wraps google/uuid so that gin can bind resource IDs from
// paths and query strings.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse parses a UUID. The empty string is the Nil UUID.
func Parse(s string) (UUID, error) {
	if s == "" {
		return Nil, nil
	}

	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, ErrInvalid
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements gin's BindUnmarshaler.
func (u *UUID) UnmarshalParam(p string) error {
	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

func (u UUID) IsNil() bool {
	return u == Nil
}
