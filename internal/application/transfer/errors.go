package transfer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures so the calling layer can decide what
// to log versus surface.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindZeroEffect ErrorKind = "zero_effect"
	KindStorage    ErrorKind = "storage"
)

// Error carries the failure kind plus the context needed to report it
// without re-deriving anything: the phase that failed, the item code and
// the location ids involved.
type Error struct {
	Kind         ErrorKind
	Phase        string
	ItemID       string
	FromLocation int
	ToLocation   int
	Err          error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("transfer %s: %s", e.Kind, e.Phase)
	if e.ItemID != "" {
		msg += fmt.Sprintf(" (item %q)", e.ItemID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind carried by err when it is an engine error, empty
// otherwise.
func KindOf(err error) ErrorKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}
