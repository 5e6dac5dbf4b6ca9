package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("arquivo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("arquivo")
	require.NoError(t, err)
	return header
}

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, "/media")

	header := fileHeader(t, "documento.pdf", []byte("conteudo do pdf"))
	url, err := ls.Save(context.Background(), header, "documentos_propostas")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/media/documentos_propostas/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	// o arquivo existe no disco com o conteúdo original
	entries, err := os.ReadDir(filepath.Join(dir, "documentos_propostas"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "documentos_propostas", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo do pdf"), data)
}

func TestLocalStorageSaveSemExtensao(t *testing.T) {
	ls := NewLocalStorage(t.TempDir(), "/media")

	header := fileHeader(t, "arquivo", []byte("x"))
	url, err := ls.Save(context.Background(), header, "entregas")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/entregas/"))
}

func TestLocalStorageResolve(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, "/media")

	header := fileHeader(t, "cartilha.pdf", []byte("x"))
	url, err := ls.Save(context.Background(), header, "entregas")
	require.NoError(t, err)

	// a URL persistida volta ao caminho do arquivo gravado
	path, ok := ls.Resolve(url)
	require.True(t, ok)
	assert.FileExists(t, path)

	// URL de outro backend não resolve
	_, ok = ls.Resolve("https://cdn.example.com/entregas/x.pdf")
	assert.False(t, ok)
}

func TestStorageSet(t *testing.T) {
	ls := NewLocalStorage(t.TempDir(), "/media")
	Set(ls)
	assert.Equal(t, Storage(ls), Get())
}
