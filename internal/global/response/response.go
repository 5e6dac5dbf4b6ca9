package response

import (
	"errors"
	"net/http"

	"cadpro-backend/config"
	"cadpro-backend/internal/global/logger"

	"github.com/gin-gonic/gin"
)

type ResponseBody struct {
	Code   int32             `json:"code"`
	Msg    string            `json:"msg"`
	Data   any               `json:"data,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Success responde 200 com payload opcional.
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{Code: http.StatusOK, Msg: "ok"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Created responde 201 com o recurso criado.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, ResponseBody{
		Code: http.StatusCreated,
		Msg:  "ok",
		Data: data,
	})
}

// Fail responde com o status HTTP carregado no erro. Erros que não são
// *Error viram 500 genérico.
func Fail(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = ErrInternal.WithOrigin(err)
	}

	body := ResponseBody{
		Code:   apiErr.Code,
		Msg:    apiErr.Message,
		Fields: apiErr.Fields,
	}
	// origin só sai em modo debug
	if config.Get().Mode == config.ModeDebug && apiErr.Origin != "" {
		body.Data = gin.H{"origin": apiErr.Origin}
	}
	c.JSON(int(apiErr.Code), body)
}

// Recovery captura panics do pipeline e devolve 500.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("panic recuperado",
			"panic", r,
			"path", c.Request.URL.Path,
		)
		c.Abort()
		Fail(c, ErrInternal)
	}
}
