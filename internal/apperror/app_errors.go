package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedEnvelope = errors.New("malformed response envelope")
	ErrMalformedRecord   = errors.New("malformed response record")
	ErrInvalidTicket     = errors.New("ticket must be yellow/red/green")
	ErrAborted           = errors.New("aborted by operator")
	ErrUnexpectedStatus  = errors.New("unexpected http status")
	ErrTokenNotFound     = errors.New("session token not found")
)

// RemoteError is returned when the service answers with a status code other than OK.
type RemoteError struct {
	Code        string
	Description string
}

func (that *RemoteError) Error() string {
	return fmt.Sprintf("remote failure %s: %s", that.Code, that.Description)
}
