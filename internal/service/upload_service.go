package service

import (
	"bytes"
	"context"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"artisan-service/pkg/imageutil"
	"artisan-service/pkg/xerrors"
)

// Upload sizing: gallery images are downscaled to fit 1600px and
// re-encoded before they leave the service.
const (
	uploadMaxWidth  = 1600
	uploadMaxHeight = 1600
	uploadQuality   = 80
)

type UploadService struct {
	cld *cloudinary.Cloudinary
}

func NewUploadService(cloudinaryURL string) (*UploadService, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &UploadService{cld: cld}, nil
}

// Upload compresses an image and ships it to object storage, returning the
// public URL.
func (s *UploadService) Upload(ctx context.Context, file io.Reader) (string, error) {
	compressed, err := imageutil.Compress(file, uploadMaxWidth, uploadMaxHeight, uploadQuality)
	if err != nil {
		log.Printf("[WARN] image compression failed, rejecting upload: %v", err)
		return "", xerrors.ErrInvalidInput
	}

	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(compressed), uploader.UploadParams{})
	if err != nil {
		log.Printf("[ERROR] cloudinary upload failed: %v", err)
		return "", xerrors.ErrUploadFailed
	}
	return res.SecureURL, nil
}
