package services

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageUploader stores an image and returns its public URL
type ImageUploader interface {
	Upload(ctx context.Context, file interface{}, folder string) (string, error)
}

// CloudinaryUploader uploads through cloudinary
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

// NewImageUploader returns nil when cloudinary is not configured, so
// handlers can refuse uploads up front.
func NewImageUploader(cld *cloudinary.Cloudinary) ImageUploader {
	if cld == nil {
		return nil
	}
	return NewCloudinaryUploader(cld)
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file interface{}, folder string) (string, error) {
	if u == nil || u.cld == nil {
		return "", errors.New("image upload is not configured")
	}
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}
