package services

import (
	"errors"

	"github.com/averde/postbox/internal/api"
)

// Standard service errors.
var (
	// Session errors
	ErrUnauthorized = errors.New("unauthorized access")

	// Network errors
	ErrNetworkUnavailable = errors.New("network unavailable")

	// Data errors
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidInput    = errors.New("invalid input provided")
)

// SendRejectedError is a business rejection of a send: the backend answered
// with a well-formed body carrying an error field. The originating draft
// stays intact so the user can correct and resubmit.
type SendRejectedError struct {
	Reason string
}

func (e *SendRejectedError) Error() string {
	return "send rejected: " + e.Reason
}

// IsAuthError reports whether err means the session credentials are missing
// or invalid, in whichever layer produced it.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var statusErr *api.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 401
}

// IsSendRejected extracts a business send rejection from err, if present.
func IsSendRejected(err error) (*SendRejectedError, bool) {
	var rejected *SendRejectedError
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}
