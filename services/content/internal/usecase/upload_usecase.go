package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"platina/pkg/logger"

	"github.com/google/uuid"
)

const DefaultMaxUploadBytes int64 = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.ReadSeeker
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

type UploadUseCase interface {
	Upload(ctx context.Context, file UploadFile) (*UploadResult, error)
}

type uploadUseCase struct {
	storage  FileStorage
	maxBytes int64
	logger   *logger.Logger
}

func NewUploadUseCase(storage FileStorage, maxBytes int64, logger *logger.Logger) UploadUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &uploadUseCase{
		storage:  storage,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (uc *uploadUseCase) Upload(ctx context.Context, file UploadFile) (*UploadResult, error) {
	if uc.storage == nil {
		return nil, ErrStorageUnavailable
	}
	if file.Body == nil {
		return nil, userError("Nenhum arquivo fornecido", nil)
	}
	if file.Size > uc.maxBytes {
		return nil, userError(fmt.Sprintf("Arquivo muito grande. Tamanho máximo: %dMB", uc.maxBytes/(1024*1024)), nil)
	}
	if !allowedImageTypes[file.ContentType] {
		return nil, userError("Tipo de arquivo não permitido. Use: JPG, PNG, WebP ou GIF", nil)
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(file.Name)))
	url, err := uc.storage.UploadFile(ctx, key, file.Body, file.ContentType)
	if err != nil {
		uc.logger.Error("Failed to upload %s: %v", file.Name, err)
		return nil, userError("Falha no upload", err)
	}

	return &UploadResult{
		URL:      url,
		Filename: file.Name,
		Size:     file.Size,
		Type:     file.ContentType,
	}, nil
}
