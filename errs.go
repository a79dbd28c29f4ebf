package geonode

import "errors"

var (
	// ErrUnknownVariant reports a discriminator matching no registered
	// concrete type.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrMalformedFields reports a recognized variant whose required
	// fields are missing or mistyped.
	ErrMalformedFields = errors.New("malformed fields")
)
