package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/krishsharma1008/offsite/internal/capture"
	"github.com/krishsharma1008/offsite/internal/model"
	"github.com/krishsharma1008/offsite/internal/retry"

	"github.com/google/uuid"
)

var (
	// ErrRollFull — пленка закончилась, съемка невозможна
	ErrRollFull = errors.New("roll is full")
	// ErrUploadInFlight — у пользователя уже идет загрузка кадра
	ErrUploadInFlight = errors.New("another upload is in progress")
)

type UploadStatus string

const (
	UploadRetrying UploadStatus = "retrying"
	UploadDone     UploadStatus = "done"
	UploadFailed   UploadStatus = "failed"
)

// UploadEvent — событие хода загрузки для потребителя (UI)
type UploadEvent struct {
	Status      UploadStatus
	Attempt     int
	MaxAttempts int
	Delay       time.Duration
}

type UploadService struct {
	storage   PhotoStorage
	objects   ObjectStore
	rolls     *RollService
	eventName string
	retryCfg  retry.Config

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewUploadService(storage PhotoStorage, objects ObjectStore, rolls *RollService, eventName string) *UploadService {
	return &UploadService{
		storage:   storage,
		objects:   objects,
		rolls:     rolls,
		eventName: eventName,
		// Начальная выдержка 2s: дальше 4s, 8s
		retryCfg: retry.Config{MaxAttempts: 3, BaseDelay: 2 * time.Second},
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// Upload проводит кадр через цепочку: загрузка объекта с повторами →
// запись метаданных → инкремент счетчика. Сбой после успешной загрузки
// компенсируется удалением объекта, иначе он останется без записи и
// будет невидим для сверки. События повторов уходят в events, если
// канал передан; отправка неблокирующая
func (s *UploadService) Upload(ctx context.Context, userID uuid.UUID, img *capture.EncodedImage, events chan<- UploadEvent) (*model.Photo, int, error) {
	if !s.acquire(userID) {
		return nil, 0, ErrUploadInFlight
	}
	defer s.release(userID)

	account, err := s.rolls.Init(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load roll account: %w", err)
	}
	// Проверяем емкость еще раз: счетчик мог измениться после рендера UI
	if !account.CanCapture() {
		return nil, account.Taken(), ErrRollFull
	}

	key := fmt.Sprintf("%s/%d.jpg", userID, time.Now().UnixMilli())

	onRetry := func(attempt, maxAttempts int, delay time.Duration) {
		log.Printf("upload retry %d/%d for %s in %s", attempt, maxAttempts, key, delay)
		notify(events, UploadEvent{
			Status:      UploadRetrying,
			Attempt:     attempt,
			MaxAttempts: maxAttempts,
			Delay:       delay,
		})
	}

	var publicURL string
	err = retry.Do(ctx, s.retryCfg, onRetry, func(ctx context.Context) error {
		url, putErr := s.objects.PutObject(ctx, key, img.Data, "image/jpeg")
		if putErr != nil {
			return putErr
		}
		publicURL = url
		return nil
	})
	if err != nil {
		// Повторы исчерпаны: записи нет, счетчик не тронут, кадр не списан
		notify(events, UploadEvent{Status: UploadFailed})
		return nil, account.Taken(), fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := &model.Photo{
		UserID:      userID,
		StoragePath: key,
		PublicURL:   publicURL,
		EventName:   s.eventName,
	}
	saved, err := s.storage.SavePhoto(ctx, photo)
	if err != nil {
		// Компенсация: убираем только что загруженный объект
		if delErr := s.objects.DeleteObject(ctx, key); delErr != nil {
			log.Printf("failed to delete object %s after insert error: %v", key, delErr)
		}
		notify(events, UploadEvent{Status: UploadFailed})
		return nil, account.Taken(), fmt.Errorf("failed to save photo record: %w", err)
	}

	count, err := s.storage.IncrementPhotoCount(ctx, userID)
	if err != nil {
		// Кадр уже записан: двигаем кэш локально, авторитетное значение
		// выровняет Refresh или сверка
		log.Printf("failed to increment photo count for %s: %v", userID, err)
		count = account.OnUploadSuccess()
	} else {
		account.OnExternalCountChange(count)
	}

	notify(events, UploadEvent{Status: UploadDone})
	return saved, count, nil
}

func (s *UploadService) acquire(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *UploadService) release(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

func notify(events chan<- UploadEvent, ev UploadEvent) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	default:
	}
}
