package service

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/webp"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

var errNotAnImage = domain.BadRequest("Nur Bilder (JPEG, PNG, WebP, GIF) sind erlaubt")

// UploadService checks files before handing them to the media host.
type UploadService struct {
	host     ports.MediaHost
	maxBytes int64
	log      zerolog.Logger
}

func NewUploadService(host ports.MediaHost, maxBytes int64, log zerolog.Logger) *UploadService {
	return &UploadService{host: host, maxBytes: maxBytes, log: log}
}

// Upload sniffs the content type, probes image dimensions and stores the file.
func (s *UploadService) Upload(ctx context.Context, in ports.UploadInput) (*domain.MediaAsset, error) {
	if in.Size > s.maxBytes {
		return nil, domain.BadRequest(fmt.Sprintf("Datei zu groß (max. %d MB)", s.maxBytes>>20))
	}

	mt, err := mimetype.DetectReader(in.Body)
	if err != nil {
		return nil, fmt.Errorf("detect mime type: %w", err)
	}
	format, ok := allowedImageTypes[mt.String()]
	if !ok {
		s.log.Debug().Str("mime", mt.String()).Str("filename", in.Filename).Msg("upload rejected")
		return nil, errNotAnImage
	}

	if _, err := in.Body.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}
	cfg, _, decodeErr := image.DecodeConfig(in.Body)
	if decodeErr != nil {
		return nil, errNotAnImage
	}
	if _, err := in.Body.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	asset, err := s.host.Upload(ctx, in.Body, in.Filename)
	if err != nil {
		return nil, err
	}
	if asset.Width == 0 && asset.Height == 0 {
		asset.Width, asset.Height = cfg.Width, cfg.Height
	}
	if asset.Format == "" {
		asset.Format = format
	}
	if asset.Bytes == 0 {
		asset.Bytes = in.Size
	}

	s.log.Info().Str("public_id", asset.PublicID).Int64("bytes", asset.Bytes).Msg("image uploaded")
	return asset, nil
}
