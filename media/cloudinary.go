package media

import (
	"context"
	"fmt"
	"time"

	"mime/multipart"

	"funfans-backend/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryUploader uploads files to a Cloudinary account.
type CloudinaryUploader struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryUploader connects to Cloudinary and checks the credentials.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not set")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := cld.Admin.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping cloudinary: %w", err)
	}

	utils.LogSuccess("Cloudinary initialised and connection verified")
	return &CloudinaryUploader{cld: cld, cloudName: cloudName}, nil
}

func boolPointer(b bool) *bool {
	return &b
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	kind, err := Validate(file)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	params := uploader.UploadParams{
		Folder:         folder,
		PublicID:       uuid.NewString(),
		UseFilename:    boolPointer(true),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(false),
		ResourceType:   "auto",
	}

	res, err := u.cld.Upload.Upload(ctx, src, params)
	if err != nil {
		utils.LogError(err, "Error uploading "+file.Filename+" to Cloudinary")
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}

	if res.SecureURL == "" {
		if res.PublicID == "" {
			return "", fmt.Errorf("cloudinary returned no URL for %s", file.Filename)
		}
		return fmt.Sprintf("https://res.cloudinary.com/%s/%s/upload/%s", u.cloudName, kind, res.PublicID), nil
	}
	return res.SecureURL, nil
}
