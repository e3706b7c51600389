// Package media stores images with Cloudinary through the official SDK.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"
	"github.com/google/uuid"

	"github.com/bandsite/cms-api/internal/core/domain"
)

var errNotConfigured = domain.Internal("Upload nicht konfiguriert", errors.New("cloudinary credentials missing"))

// Config holds the Cloudinary account settings.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	// Folder receives every upload.
	Folder string
	// APIURL overrides the SDK's upload prefix (https://api.cloudinary.com).
	APIURL  string
	Timeout time.Duration
}

func (c Config) configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// Cloudinary implements ports.MediaHost and queue.Deleter. Without
// credentials every call fails with "Upload nicht konfiguriert".
type Cloudinary struct {
	folder string
	sdk    *cloudinary.Cloudinary
	newID  func() string
}

// NewCloudinary builds the SDK client. Missing credentials are not an error
// here so the API can run without uploads.
func NewCloudinary(cfg Config) (*Cloudinary, error) {
	c := &Cloudinary{folder: cfg.Folder, newID: uuid.NewString}
	if !cfg.configured() {
		return c, nil
	}

	conf, err := cldconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	if cfg.APIURL != "" {
		conf.API.UploadPrefix = cfg.APIURL
	}
	if cfg.Timeout > 0 {
		secs := int64(cfg.Timeout / time.Second)
		conf.API.Timeout = secs
		conf.API.UploadTimeout = secs
	}

	sdk, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	c.sdk = sdk
	return c, nil
}

// Upload stores r under a fresh public id inside the configured folder.
func (c *Cloudinary) Upload(ctx context.Context, r io.Reader, filename string) (*domain.MediaAsset, error) {
	if c.sdk == nil {
		return nil, errNotConfigured
	}

	res, err := c.sdk.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: c.newID(),
		Folder:   c.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload %s: %w", filename, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload %s: %s", filename, res.Error.Message)
	}

	return &domain.MediaAsset{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Format:   res.Format,
		Bytes:    int64(res.Bytes),
	}, nil
}

// Delete destroys the asset. Missing assets are not an error.
func (c *Cloudinary) Delete(ctx context.Context, publicID string) error {
	if c.sdk == nil {
		return errNotConfigured
	}

	res, err := c.sdk.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, res.Error.Message)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %s: result %q", publicID, res.Result)
	}
	return nil
}
