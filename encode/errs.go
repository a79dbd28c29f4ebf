package encode

import "errors"

// ErrNonFinite is returned when a number has no JSON rendering
// (NaN or an infinity).
var ErrNonFinite = errors.New("number not representable")
