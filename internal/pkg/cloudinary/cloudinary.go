package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service uploads profile images to Cloudinary.
type Service struct {
	cld          *cloudinary.Cloudinary
	uploadFolder string
}

// UploadResult describes a stored asset.
type UploadResult struct {
	URL      string
	PublicID string
	Width    int
	Height   int
}

var (
	allowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	// MaxImageSize bounds avatar uploads.
	MaxImageSize = int64(5 * 1024 * 1024)
)

// NewService creates a Cloudinary client scoped to uploadFolder.
func NewService(cloudName, apiKey, apiSecret, uploadFolder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cld, err := cloudinary.NewFromURL(fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if uploadFolder == "" {
		uploadFolder = "huddle"
	}

	return &Service{cld: cld, uploadFolder: uploadFolder}, nil
}

// ValidateImage checks extension and size before an upload is attempted.
func ValidateImage(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return fmt.Errorf("image exceeds the %dMB limit", MaxImageSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range allowedImageTypes {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("unsupported image type %q", ext)
}

// UploadAvatar stores an avatar image and returns its public URL.
func (s *Service) UploadAvatar(ctx context.Context, file multipart.File, publicID string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       s.uploadFolder + "/avatars",
		PublicID:     publicID,
		ResourceType: "image",
		Overwrite:    boolPtr(true),
	})
	if err != nil {
		return nil, fmt.Errorf("avatar upload failed: %w", err)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
	}, nil
}

// Delete removes a previously uploaded asset.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	return err
}

func boolPtr(b bool) *bool {
	return &b
}
