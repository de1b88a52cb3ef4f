// Package storage guarda os arquivos enviados como ativos de marca
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
)

// ErrFileTooLarge indica que o arquivo excede o tamanho máximo de upload
var ErrFileTooLarge = errors.New("storage: arquivo excede o tamanho máximo")

type UploadInput struct {
	Reader      io.Reader
	ContentType string
	Size        int64
	Filename    string
}

type UploadOutput struct {
	Key        string    `json:"storage_key"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	Backend    string    `json:"backend"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ObjectStorage é implementado pelo S3 e pelo disco local
type ObjectStorage interface {
	Upload(ctx context.Context, in UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, key string) error
	Name() string
}

// Uploader aplica o limite de tamanho antes de repassar ao armazenamento
type Uploader struct {
	backend  ObjectStorage
	maxBytes int64
}

func NewUploader(backend ObjectStorage, maxBytes int64) *Uploader {
	return &Uploader{
		backend:  backend,
		maxBytes: maxBytes,
	}
}

// New escolhe o S3 quando configurado e o disco local caso contrário
func New(cfg config.Storage) (*Uploader, error) {
	maxBytes := cfg.MaxUploadMB * 1024 * 1024

	if cfg.S3Enabled() {
		s3Storage, err := NewS3Storage(S3Config{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			PublicURL:       cfg.S3PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar armazenamento S3: %w", err)
		}
		return NewUploader(s3Storage, maxBytes), nil
	}

	local, err := NewLocalStorage(cfg.LocalDir, "/uploads")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar armazenamento local: %w", err)
	}

	return NewUploader(local, maxBytes), nil
}

// MaxBytes é o tamanho máximo aceito por arquivo
func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// MaxMegabytes é o limite em megabytes usado nas mensagens de erro
func (u *Uploader) MaxMegabytes() int64 {
	return u.maxBytes / (1024 * 1024)
}

func (u *Uploader) Backend() string {
	return u.backend.Name()
}

func (u *Uploader) Upload(ctx context.Context, in UploadInput) (*UploadOutput, error) {
	if u.maxBytes > 0 && in.Size > u.maxBytes {
		return nil, ErrFileTooLarge
	}

	out, err := u.backend.Upload(ctx, in)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  u.backend.Name(),
			"error": err.Error(),
		}).Error("Storage: falha ao enviar arquivo")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"kind": u.backend.Name(),
		"key":  out.Key,
		"size": out.Size,
	}).Info("Storage: arquivo enviado")

	return out, nil
}

func (u *Uploader) Delete(ctx context.Context, key string) error {
	return u.backend.Delete(ctx, key)
}
