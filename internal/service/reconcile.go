package service

import (
	"context"
	"fmt"
	"log"

	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/google/uuid"
)

// ReconcileService находит осиротевшие записи (метаданные без объекта в
// хранилище), удаляет их и корректирует счетчики владельцев
type ReconcileService struct {
	storage PhotoStorage
	objects ObjectStore
	rolls   *RollService
}

func NewReconcileService(storage PhotoStorage, objects ObjectStore, rolls *RollService) *ReconcileService {
	return &ReconcileService{
		storage: storage,
		objects: objects,
		rolls:   rolls,
	}
}

// Reconcile идемпотентен: повторный запуск без изменений между проходами
// ничего не удаляет. Любая ошибка удаленного вызова обрывает проход,
// следующий триггер начнет заново
func (s *ReconcileService) Reconcile(ctx context.Context) (int, error) {
	photos, err := s.storage.GetAllPhotos(ctx, shared.SortUploadedNew)
	if err != nil {
		return 0, fmt.Errorf("failed to list photos: %w", err)
	}

	var orphaned []uuid.UUID
	perOwner := make(map[uuid.UUID]int)
	for _, p := range photos {
		// Проверки последовательные, чтобы не заваливать хранилище запросами
		exists, headErr := s.objects.HeadObject(ctx, p.StoragePath)
		if headErr != nil {
			// fail-open: сомнительный результат проверки — не сирота
			log.Printf("head check failed for %s, keeping record: %v", p.StoragePath, headErr)
			continue
		}
		if exists {
			continue
		}
		log.Printf("orphaned photo found: %s (%s)", p.ID, p.StoragePath)
		orphaned = append(orphaned, p.ID)
		perOwner[p.UserID]++
	}

	if len(orphaned) == 0 {
		return 0, nil
	}

	// Сначала удаляем записи, затем правим счетчики
	if err := s.storage.DeletePhotos(ctx, orphaned); err != nil {
		return 0, fmt.Errorf("failed to delete orphaned records: %w", err)
	}

	for owner, n := range perOwner {
		// Счетчик читаем заново: пока шла проверка, владелец мог успеть
		// загрузить новые кадры
		current, err := s.storage.GetPhotoCount(ctx, owner)
		if err != nil {
			return len(orphaned), fmt.Errorf("failed to read counter for %s: %w", owner, err)
		}
		corrected := current - n
		if corrected < 0 {
			corrected = 0
		}
		if err := s.storage.UpdatePhotoCount(ctx, owner, corrected); err != nil {
			return len(orphaned), fmt.Errorf("failed to correct counter for %s: %w", owner, err)
		}
		log.Printf("corrected photo count for %s: %d -> %d", owner, current, corrected)
		s.rolls.OnExternalCountChange(owner, corrected)
	}

	return len(orphaned), nil
}
