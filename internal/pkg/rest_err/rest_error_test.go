package rest_err

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	trace := "abc-123"

	cases := []struct {
		name string
		err  *RestErr
		code int
		kind string
	}{
		{"bad request", NewBadRequestError(&trace, "x"), http.StatusBadRequest, ErrBadRequest},
		{"validation", NewBadRequestValidationError(&trace, "x", []Causes{NewCause("name", "obrigatório")}), http.StatusBadRequest, ErrBadRequest},
		{"not found", NewNotFoundError(&trace, "x"), http.StatusNotFound, ErrNotFound},
		{"internal", NewInternalServerError(&trace, "x", nil), http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.kind, tc.err.Err)
			assert.Equal(t, trace, tc.err.RayTrace)
			assert.Equal(t, "x", tc.err.Error())
		})
	}
}

func TestJSONOmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(NewNotFoundError(nil, "Ficha não encontrada."))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "Ficha não encontrada.", body["message"])
	assert.Equal(t, "not_found", body["error"])
	assert.EqualValues(t, http.StatusNotFound, body["code"])
	assert.NotContains(t, body, "ray_trace")
	assert.NotContains(t, body, "causes")
}
