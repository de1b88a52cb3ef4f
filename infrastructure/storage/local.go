package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage grava os arquivos em um diretório do servidor
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de uploads: %w", err)
	}

	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) Name() string {
	return "local"
}

// Upload grava o arquivo como <uuid>-<nome original>, sem diretórios
func (s *LocalStorage) Upload(_ context.Context, in UploadInput) (*UploadOutput, error) {
	name := filepath.Base(filepath.Clean("/" + in.Filename))
	if name == "/" || name == "." {
		return nil, fmt.Errorf("nome de arquivo inválido: %q", in.Filename)
	}
	key := uuid.New().String() + "-" + name

	file, err := os.OpenFile(filepath.Join(s.dir, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar arquivo: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, in.Reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar arquivo: %w", err)
	}

	return &UploadOutput{
		Key:        key,
		URL:        s.baseURL + "/" + key,
		Size:       written,
		Backend:    s.Name(),
		UploadedAt: time.Now().UTC(),
	}, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erro ao remover arquivo: %w", err)
	}
	return nil
}
