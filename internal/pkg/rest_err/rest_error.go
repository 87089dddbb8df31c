package rest_err

import "net/http"

type RestErr struct {
	Message  string   `json:"message"`
	Err      string   `json:"error"`
	Code     int      `json:"code"`
	RayTrace string   `json:"ray_trace,omitempty"`
	Causes   []Causes `json:"causes,omitempty"`
}

func (r *RestErr) Error() string {
	return r.Message
}

// NewRestErr monta o erro padrão da API. rayTrace pode ser nil quando a
// requisição ainda não recebeu um código de rastreio.
func NewRestErr(rayTrace *string, message, err string, code int, causes []Causes) *RestErr {
	restErr := &RestErr{
		Message: message,
		Err:     err,
		Code:    code,
		Causes:  causes,
	}
	if rayTrace != nil {
		restErr.RayTrace = *rayTrace
	}
	return restErr
}

func NewBadRequestError(rayTrace *string, message string) *RestErr {
	return NewRestErr(rayTrace, message, ErrBadRequest, http.StatusBadRequest, nil)
}

func NewBadRequestValidationError(rayTrace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(rayTrace, message, ErrBadRequest, http.StatusBadRequest, causes)
}

func NewInternalServerError(rayTrace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(rayTrace, message, ErrInternalServerError, http.StatusInternalServerError, causes)
}

func NewNotFoundError(rayTrace *string, message string) *RestErr {
	return NewRestErr(rayTrace, message, ErrNotFound, http.StatusNotFound, nil)
}
