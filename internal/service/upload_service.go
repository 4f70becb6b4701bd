package service

import (
	"context"

	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/storage"
	"github.com/rs/zerolog/log"
)

// UploadService issues presigned PUT URLs. Clients upload directly to the bucket and then
// record the returned path on a course file or shared note; no row is written here.
type UploadService interface {
	CreateUploadURL(ctx context.Context, req dto.UploadURLRequestDTO) (*dto.UploadURLResponseDTO, error)
}

type uploadService struct {
	presigner storage.Presigner
}

func NewUploadService(presigner storage.Presigner) UploadService {
	return &uploadService{presigner: presigner}
}

func (s *uploadService) CreateUploadURL(ctx context.Context, req dto.UploadURLRequestDTO) (*dto.UploadURLResponseDTO, error) {
	upload, err := s.presigner.PresignUpload(ctx, req.Path, req.ContentType)
	if err != nil {
		log.Warn().Err(err).Str("path", req.Path).Msg("Could not presign upload")
		return nil, err
	}
	return &dto.UploadURLResponseDTO{
		Method:    upload.Method,
		URL:       upload.URL,
		Headers:   upload.Headers,
		Path:      upload.Key,
		PublicURL: upload.PublicURL,
		ExpiresAt: upload.ExpiresAt,
	}, nil
}
