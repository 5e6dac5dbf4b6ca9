package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/global/response"
	"cadpro-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Request descreve uma chamada de handler nos testes.
type Request struct {
	Body      any               // serializado como JSON quando não nulo
	Raw       *bytes.Buffer     // corpo bruto (multipart); tem precedência sobre Body
	RawType   string            // Content-Type do corpo bruto
	Principal *model.Usuario    // usuário autenticado injetado no contexto
	Token     string            // token da sessão corrente
	Params    map[string]string // parâmetros de rota (:id etc.)
}

// Do executa o handler com a requisição montada e decodifica o envelope.
func Do(t *testing.T, handlerFunc gin.HandlerFunc, req Request) response.ResponseBody {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body *bytes.Buffer
	contentType := "application/json"
	switch {
	case req.Raw != nil:
		body = req.Raw
		contentType = req.RawType
	case req.Body != nil:
		requestBytes, err := json.Marshal(req.Body)
		require.NoError(t, err)
		body = bytes.NewBuffer(requestBytes)
	default:
		body = bytes.NewBuffer(nil)
	}

	c.Request = httptest.NewRequest(http.MethodPost, "/test", body)
	c.Request.Header.Set("Content-Type", contentType)

	if req.Principal != nil {
		middleware.SetPrincipal(c, req.Principal)
	}
	if req.Token != "" {
		c.Set("token", req.Token)
	}
	for k, v := range req.Params {
		c.Params = append(c.Params, gin.Param{Key: k, Value: v})
	}

	handlerFunc(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// DoRequest executa o handler com um corpo JSON simples.
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) response.ResponseBody {
	t.Helper()
	return Do(t, handlerFunc, Request{Body: request})
}

// Multipart monta um corpo multipart com campos de texto e um arquivo
// opcional (fileField vazio omite o arquivo).
func Multipart(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
