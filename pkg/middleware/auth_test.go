package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("qualquer-segredo"))
	require.NoError(t, err)
	return token
}

func TestPrincipalFromToken(t *testing.T) {
	tests := []struct {
		name     string
		token    func(t *testing.T) string
		expected domain.Principal
	}{
		{
			name:     "token opaco usa o usuário de demonstração",
			token:    func(*testing.T) string { return "abc123" },
			expected: domain.DemoPrincipal,
		},
		{
			name: "JWT com sub e email",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"sub": "user-42", "email": "ana@example.com"})
			},
			expected: domain.Principal{UserID: "user-42", Email: "ana@example.com"},
		},
		{
			name: "JWT sem email mantém o email de demonstração",
			token: func(t *testing.T) string {
				return signedToken(t, jwt.MapClaims{"sub": "user-7"})
			},
			expected: domain.Principal{UserID: "user-7", Email: domain.DemoPrincipal.Email},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrincipalFromToken(tt.token(t)))
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	var captured domain.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthMiddleware()(next)

	tests := []struct {
		name         string
		method       string
		path         string
		header       string
		expectedCode int
		validate     func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:         "rota fora de /api não exige token",
			method:       http.MethodGet,
			path:         "/health",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "preflight passa sem token",
			method:       http.MethodOptions,
			path:         "/api/dashboard/metrics",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "sem cabeçalho Authorization",
			method:       http.MethodGet,
			path:         "/api/dashboard/metrics",
			expectedCode: http.StatusUnauthorized,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "Authorization header is required")
			},
		},
		{
			name:         "esquema diferente de Bearer",
			method:       http.MethodGet,
			path:         "/api/dashboard/metrics",
			header:       "Basic dXNlcjpzZW5oYQ==",
			expectedCode: http.StatusUnauthorized,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "Bearer token is required")
			},
		},
		{
			name:         "bearer opaco autentica o usuário de demonstração",
			method:       http.MethodGet,
			path:         "/api/dashboard/metrics",
			header:       "Bearer demo",
			expectedCode: http.StatusNoContent,
			validate: func(t *testing.T, _ *httptest.ResponseRecorder) {
				assert.Equal(t, domain.DemoPrincipal, captured)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = domain.Principal{}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
