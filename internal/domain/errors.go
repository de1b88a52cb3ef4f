package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indica que o registro solicitado não existe no armazenamento
var ErrNotFound = errors.New("registro não encontrado")

// ValidationError carrega a mensagem de validação exibida para o cliente da API
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError cria um erro de validação com mensagem formatada
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AsValidationError extrai um ValidationError da cadeia de erros
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// FormatChoices formata a lista de valores aceitos como "['a', 'b']"
func FormatChoices[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + string(v) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
