package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Declared as a var so tests can swap in
// a deterministic generator.
var NewULID = func() string {
	return ulid.Make().String()
}
