package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "validação", code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "não encontrado", code: ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "fila cheia", code: ErrServiceUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "código desconhecido", code: "XYZ", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "Budget must be positive", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "Budget must be positive", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrNotFound).Code)

	plain := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, plain.Code)
	assert.Equal(t, "falhou", plain.Message)

	wrapped := FromError(APIError{Code: ErrNotFound, Message: "Post not found"}, ErrInternalServer)
	assert.Equal(t, ErrNotFound, wrapped.Code)
}
