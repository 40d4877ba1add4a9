package service

import (
	"context"

	"github.com/krishsharma1008/offsite/internal/model"
	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/google/uuid"
)

// ObjectStore — операции с объектным хранилищем (реализуется storage/s3)
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
	HeadObject(ctx context.Context, key string) (bool, error)
	DeleteObject(ctx context.Context, key string) error
	PublicURL(key string) string
}

// PhotoStorage — метаданные фотографий и счетчики кадров
// (реализуется storage/postgres)
type PhotoStorage interface {
	SavePhoto(ctx context.Context, photo *model.Photo) (*model.Photo, error)
	GetAllPhotos(ctx context.Context, sort shared.SortOption) ([]model.Photo, error)
	GetUserPhotos(ctx context.Context, userID uuid.UUID) ([]model.Photo, error)
	GetPhoto(ctx context.Context, userID uuid.UUID, photoID uuid.UUID) (*model.Photo, error)
	DeletePhoto(ctx context.Context, userID uuid.UUID, photoID uuid.UUID) error
	DeletePhotos(ctx context.Context, ids []uuid.UUID) error
	GetPhotoCount(ctx context.Context, userID uuid.UUID) (int, error)
	UpdatePhotoCount(ctx context.Context, userID uuid.UUID, count int) error
	IncrementPhotoCount(ctx context.Context, userID uuid.UUID) (int, error)
	DecrementPhotoCount(ctx context.Context, userID uuid.UUID) (int, error)
}
