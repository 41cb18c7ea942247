package country

import (
	"errors"
	"fmt"
)

// Fetch stages reported in FetchError.Op.
const (
	OpRequest = "request"
	OpStatus  = "status"
	OpDecode  = "decode"
)

// ErrUnexpectedStatus is wrapped by FetchError for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// FetchError reports a failed retrieval of country data.
type FetchError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch countries: %s %s: %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch countries: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is, or wraps, a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
