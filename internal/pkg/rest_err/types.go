package rest_err

const (
	ErrBadRequest          = "bad_request"
	ErrInternalServerError = "internal_server_error"
	ErrNotFound            = "not_found"
)
