package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error é o tipo de erro da API. Code espelha o status HTTP devolvido.
type Error struct {
	Code    int32             `json:"code"`
	Message string            `json:"msg"`
	Origin  string            `json:"origin,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	// cause guarda o erro original para errors.Unwrap()
	cause error
	stack pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace devolve a pilha capturada, implementando a interface do pkg/errors.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if e.cause != nil {
		var st stackTracer
		if errors.As(e.cause, &st) {
			return st.StackTrace()
		}
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// WithOrigin anexa o erro original para depuração. O campo Origin só é
// serializado em modo debug (ver Fail).
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	wrapped := ensureStack(err)
	newErr := &Error{
		Code:    e.Code,
		Message: e.Message,
		Fields:  e.Fields,
		Origin:  fmt.Sprintf("%+v", wrapped),
		cause:   wrapped,
	}
	var st stackTracer
	if errors.As(wrapped, &st) {
		newErr.stack = st.StackTrace()
	}
	return newErr
}

// WithTips acrescenta detalhes visíveis ao cliente na mensagem.
func (e *Error) WithTips(details ...string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message + " " + fmt.Sprintf("%v", details),
		Fields:  e.Fields,
		cause:   e.cause,
		stack:   e.stack,
	}
}

// WithField registra um erro de validação por campo.
func (e *Error) WithField(field, msg string) *Error {
	fields := make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		fields[k] = v
	}
	fields[field] = msg
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Origin:  e.Origin,
		Fields:  fields,
		cause:   e.cause,
		stack:   e.stack,
	}
}

func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	var st stackTracer
	if errors.As(err, &st) {
		return err
	}
	return pkgerrors.WithStack(err)
}
