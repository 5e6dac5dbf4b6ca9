package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cadpro-backend/config"
)

// Storage guarda os arquivos enviados (documentos de proposta, anexos
// de relatório, entregas) e devolve a URL de acesso persistida.
type Storage interface {
	Save(ctx context.Context, fileHeader *multipart.FileHeader, dir string) (string, error)
}

var instance Storage

func Init() {
	cfg := config.Get().Storage
	switch cfg.Driver {
	case "s3":
		instance = NewS3Storage()
	default:
		instance = NewLocalStorage(cfg.Home, cfg.BaseURL)
	}
}

func Get() Storage {
	return instance
}

// Set troca o backend; usado pelos testes.
func Set(s Storage) {
	instance = s
}

// LocalStorage grava no disco local sob SaveDir/<dir>/.
type LocalStorage struct {
	SaveDir string
	BaseURL string
}

func NewLocalStorage(saveDir, baseURL string) *LocalStorage {
	return &LocalStorage{
		SaveDir: saveDir,
		BaseURL: baseURL,
	}
}

func (ls *LocalStorage) Save(_ context.Context, fileHeader *multipart.FileHeader, dir string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	target := filepath.Join(ls.SaveDir, dir)
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		return "", err
	}

	// nome único: timestamp + extensão original
	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	filePath := filepath.Join(target, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return ls.BaseURL + "/" + dir + "/" + filename, nil
}

// Resolve traduz a URL persistida de volta ao caminho em disco.
// ok=false quando a URL não pertence a este backend.
func (ls *LocalStorage) Resolve(url string) (string, bool) {
	rel, found := strings.CutPrefix(url, ls.BaseURL+"/")
	if !found {
		return "", false
	}
	return filepath.Join(ls.SaveDir, filepath.FromSlash(rel)), true
}
