// Package upload stores admin-submitted images in Cloudinary and
// returns their public URLs.
package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"news-portal/pkg/config"
)

// Result describes a stored image.
type Result struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
	Bytes    int
}

// Uploader stores and removes images.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*Result, error)
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryUploader implements Uploader against the Cloudinary API.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds an uploader from CLOUDINARY_CLOUD_NAME,
// CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET.
func NewCloudinary() (*CloudinaryUploader, error) {
	cloudName := config.GetEnvString("CLOUDINARY_CLOUD_NAME", "")
	apiKey := config.GetEnvString("CLOUDINARY_API_KEY", "")
	apiSecret := config.GetEnvString("CLOUDINARY_API_SECRET", "")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("NewCloudinary: %w", err)
	}
	return &CloudinaryUploader{
		client: client,
		folder: config.GetEnvString("CLOUDINARY_FOLDER", "news-portal"),
	}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (*Result, error) {
	if folder == "" {
		folder = u.folder
	}
	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: boolPtr(true),
	})
	if err != nil {
		return nil, fmt.Errorf("Upload: %w", err)
	}
	return &Result{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
		Format:   resp.Format,
		Bytes:    resp.Bytes,
	}, nil
}

func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	_, err := u.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
