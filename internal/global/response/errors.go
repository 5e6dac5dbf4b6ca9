package response

import "net/http"

var (
	ErrInvalidRequest     = newError(http.StatusBadRequest, "requisição inválida")
	ErrInvalidCredentials = newError(http.StatusBadRequest, "credenciais inválidas")
	ErrTokenInvalid       = newError(http.StatusUnauthorized, "token ausente ou inválido")
	ErrForbidden          = newError(http.StatusForbidden, "acesso negado")
	ErrNotFound           = newError(http.StatusNotFound, "recurso não encontrado")
	ErrAlreadyExists      = newError(http.StatusConflict, "recurso já existe")
	ErrEstadoInvalido     = newError(http.StatusConflict, "transição de estado inválida")
	ErrDatabase           = newError(http.StatusInternalServerError, "erro de banco de dados")
	ErrStorage            = newError(http.StatusInternalServerError, "erro ao armazenar arquivo")
	ErrInternal           = newError(http.StatusInternalServerError, "erro interno")
)
