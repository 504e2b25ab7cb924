package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/mealrank/backend/internal/model"
	"github.com/pageza/mealrank/backend/internal/types"
)

const (
	imageKeyPrefix = "meal-images/"
	presignTTL     = 15 * time.Minute
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg", "image/png": "png", "image/webp": "webp", "image/gif": "gif",
}

// ImageContent is how an image is served: a redirect, or raw bytes.
type ImageContent struct {
	RedirectURL string
	Data        []byte
	MimeType    string
}

// ImageService validates meal images and stores base64 uploads either in the
// object store or inline in the database.
type ImageService struct {
	db     *gorm.DB
	store  ObjectStore
	logger *zap.Logger
}

// NewImageService creates a new ImageService instance. A nil store keeps
// uploads inline.
func NewImageService(db *gorm.DB, store ObjectStore, logger *zap.Logger) *ImageService {
	return &ImageService{db: db, store: store, logger: logger}
}

// Prepare validates inputs and returns image rows ready to be attached to a
// meal. Inputs without a payload are dropped.
func (s *ImageService) Prepare(ctx context.Context, inputs []types.ImageInput) ([]model.Image, error) {
	if len(inputs) > types.MaxImagesPerMeal {
		return nil, fmt.Errorf("%w: at most %d images per meal", ErrInvalidImage, types.MaxImagesPerMeal)
	}

	images := make([]model.Image, 0, len(inputs))
	for i, in := range inputs {
		if !in.Usable() {
			continue
		}
		if in.Type == model.ImageTypeURL {
			images = append(images, model.Image{ImageType: model.ImageTypeURL, ImageURL: in.URL})
			continue
		}

		mimeType, payload, data, err := decodeImage(in)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i+1, err)
		}

		if s.store == nil {
			images = append(images, model.Image{ImageType: model.ImageTypeBase64, ImageData: payload, MimeType: mimeType})
			continue
		}

		key := fmt.Sprintf("%s%s.%s", imageKeyPrefix, uuid.New().String(), imageExtensions[mimeType])
		if err := s.store.PutObject(ctx, key, data, mimeType); err != nil {
			return nil, err
		}
		s.logger.Debug("uploaded meal image", zap.String("key", key), zap.Int("bytes", len(data)))
		images = append(images, model.Image{ImageType: model.ImageTypeS3, ObjectKey: key, MimeType: mimeType})
	}
	return images, nil
}

// decodeImage accepts raw base64 or a data URL. It returns the mime type, the
// bare base64 payload and the decoded bytes.
func decodeImage(in types.ImageInput) (string, string, []byte, error) {
	payload := strings.TrimSpace(in.Base64)
	mimeType := strings.ToLower(strings.TrimSpace(in.MimeType))

	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return "", "", nil, fmt.Errorf("%w: malformed data URL", ErrInvalidImage)
		}
		if mimeType == "" {
			mimeType = strings.ToLower(strings.TrimSuffix(header, ";base64"))
		}
		payload = body
	}

	if !slices.Contains(types.AllowedImageTypes, mimeType) {
		return "", "", nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidImage, mimeType)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: bad base64 data", ErrInvalidImage)
	}
	if len(data) > types.MaxImageBytes {
		return "", "", nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, types.MaxImageBytes)
	}
	return mimeType, payload, data, nil
}

// Content resolves an image for the image endpoint.
func (s *ImageService) Content(ctx context.Context, id uint) (*ImageContent, error) {
	var img model.Image
	if err := s.db.WithContext(ctx).First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	switch img.ImageType {
	case model.ImageTypeURL:
		if img.ImageURL != "" {
			return &ImageContent{RedirectURL: img.ImageURL}, nil
		}
	case model.ImageTypeS3:
		if s.store != nil && img.ObjectKey != "" {
			url, err := s.store.GeneratePresignedURL(ctx, img.ObjectKey, presignTTL)
			if err != nil {
				return nil, fmt.Errorf("failed to presign image: %w", err)
			}
			return &ImageContent{RedirectURL: url}, nil
		}
	case model.ImageTypeBase64:
		if img.ImageData != "" && img.MimeType != "" {
			data, err := base64.StdEncoding.DecodeString(img.ImageData)
			if err != nil {
				return nil, fmt.Errorf("stored image %d is corrupt: %w", id, err)
			}
			return &ImageContent{Data: data, MimeType: img.MimeType}, nil
		}
	}
	return nil, ErrNotFound
}

// withPublicURLs fills Image.URL for every image.
func withPublicURLs(images []model.Image) {
	for i := range images {
		images[i].URL = images[i].PublicURL()
	}
}
