package objectstorage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

// ObjectStorage uploads binary objects and serves back a public URL plus the
// path needed to delete the object later.
type ObjectStorage interface {
	Upload(ctx context.Context, file io.Reader, name string) (url string, path string, err error)
	Delete(ctx context.Context, path string) error
}

type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func CreateCloudinaryStorage(cloudinaryURL, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}

	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, name string) (string, string, error) {
	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: name,
		Folder:   s.folder,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "Upload").Msg("")
		return "", "", err
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, path string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: path,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "Delete").Msg("")
	}

	return err
}
