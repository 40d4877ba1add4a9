package service

import (
	"context"
	"fmt"
	"log"

	"github.com/krishsharma1008/offsite/internal/model"
	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/google/uuid"
)

// GalleryService отдает содержимое фотокниги и выполняет явное удаление кадров
type GalleryService struct {
	storage PhotoStorage
	objects ObjectStore
	rolls   *RollService
}

func NewGalleryService(storage PhotoStorage, objects ObjectStore, rolls *RollService) *GalleryService {
	return &GalleryService{
		storage: storage,
		objects: objects,
		rolls:   rolls,
	}
}

func (s *GalleryService) GetAllPhotos(ctx context.Context, sortParam string) ([]model.Photo, string, error) {
	// Выбираем параметр сортировки
	sort := shared.SortOption(sortParam)
	if _, ok := shared.ValidSorts[sort]; !ok {
		sort = shared.DefaultSort
	}
	photos, err := s.storage.GetAllPhotos(ctx, sort)
	if err != nil {
		log.Printf("Storage ERROR: %v\n", err)
		return []model.Photo{}, "", err
	}
	return photos, string(sort), nil
}

func (s *GalleryService) GetUserPhotos(ctx context.Context, userID uuid.UUID) ([]model.Photo, error) {
	return s.storage.GetUserPhotos(ctx, userID)
}

// DeletePhoto удаляет объект (best-effort), запись и уменьшает счетчик
// владельца. Возвращает новое значение счетчика
func (s *GalleryService) DeletePhoto(ctx context.Context, userID uuid.UUID, photoID uuid.UUID) (int, error) {
	photo, err := s.storage.GetPhoto(ctx, userID, photoID)
	if err != nil {
		return 0, err
	}

	// Объект удаляем первым; неудача не блокирует удаление записи —
	// остаток подчистит сверка
	if err := s.objects.DeleteObject(ctx, photo.StoragePath); err != nil {
		log.Printf("failed to delete object %s: %v", photo.StoragePath, err)
	}

	if err := s.storage.DeletePhoto(ctx, userID, photoID); err != nil {
		return 0, fmt.Errorf("failed to delete photo record: %w", err)
	}

	count, err := s.storage.DecrementPhotoCount(ctx, userID)
	if err != nil {
		// Запись уже удалена: двигаем кэш локально, авторитетное значение
		// выровняет сверка
		log.Printf("failed to decrement photo count for %s: %v", userID, err)
		account, initErr := s.rolls.Init(ctx, userID)
		if initErr != nil {
			log.Printf("failed to load roll account for %s: %v", userID, initErr)
			return 0, nil
		}
		return account.OnDelete(), nil
	}

	s.rolls.OnExternalCountChange(userID, count)
	return count, nil
}
