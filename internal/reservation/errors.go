package reservation

import "errors"

var (
	// ErrNotFound: the nbr does not (or no longer does) exist on the server.
	ErrNotFound = errors.New("reservation not found")
	// ErrConflict: the server refused a create because the nbr is taken.
	ErrConflict = errors.New("reservation number already used")
	// ErrRejected: the server refused the record (400/422).
	ErrRejected = errors.New("reservation rejected by server")
	// ErrUnavailable: transport failure or 5xx; the caller must treat the
	// list as unchanged and surface the error.
	ErrUnavailable = errors.New("reservation service unavailable")
	// ErrInvalidForm: local validation failed; no network call was made.
	ErrInvalidForm = errors.New("invalid reservation form")
)

// MessageCode maps a client or form error to the i18n code shown to staff.
func MessageCode(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return "nbr_taken"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrUnavailable):
		return "api_unreachable"
	default:
		return "reservation_error"
	}
}
