package service

import (
	"context"
	"sync"

	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/google/uuid"
)

// RollAccount — счетчик кадров одного пользователя на время сессии.
// Кэширует авторитетное значение из профиля; сверка и удаления могут
// менять счетчик извне, поэтому значение обновляется через
// OnExternalCountChange, а не считается вечно актуальным
type RollAccount struct {
	userID uuid.UUID

	mu    sync.Mutex
	count int
}

func (a *RollAccount) Taken() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

func (a *RollAccount) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.count >= shared.MaxShots {
		return 0
	}
	return shared.MaxShots - a.count
}

// CanCapture проверяется непосредственно перед съемкой: сверка могла
// изменить счетчик после последнего чтения
func (a *RollAccount) CanCapture() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count < shared.MaxShots
}

func (a *RollAccount) OnUploadSuccess() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.count++
	return a.count
}

func (a *RollAccount) OnDelete() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.count > 0 {
		a.count--
	}
	return a.count
}

func (a *RollAccount) OnExternalCountChange(count int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if count < 0 {
		count = 0
	}
	a.count = count
}

// RollService раздает аккаунты пленки по пользователям и синхронизирует
// их с авторитетным счетчиком в профиле
type RollService struct {
	storage PhotoStorage

	mu       sync.Mutex
	accounts map[uuid.UUID]*RollAccount
}

func NewRollService(storage PhotoStorage) *RollService {
	return &RollService{
		storage:  storage,
		accounts: make(map[uuid.UUID]*RollAccount),
	}
}

// Init возвращает аккаунт пользователя, при первом обращении загружая
// счетчик из профиля
func (s *RollService) Init(ctx context.Context, userID uuid.UUID) (*RollAccount, error) {
	s.mu.Lock()
	account, ok := s.accounts[userID]
	s.mu.Unlock()
	if ok {
		return account, nil
	}

	count, err := s.storage.GetPhotoCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Кто-то мог создать аккаунт, пока мы ходили в БД
	if account, ok = s.accounts[userID]; ok {
		return account, nil
	}
	account = &RollAccount{userID: userID, count: count}
	if count < 0 {
		account.count = 0
	}
	s.accounts[userID] = account
	return account, nil
}

// Refresh перечитывает авторитетный счетчик после внешних изменений
// (удаление, сверка) и возвращает актуальное значение
func (s *RollService) Refresh(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.storage.GetPhotoCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	account, err := s.Init(ctx, userID)
	if err != nil {
		return 0, err
	}
	account.OnExternalCountChange(count)
	return account.Taken(), nil
}

// OnExternalCountChange обновляет кэш, если аккаунт уже загружен.
// Несуществующий аккаунт подтянет свежее значение при Init
func (s *RollService) OnExternalCountChange(userID uuid.UUID, count int) {
	s.mu.Lock()
	account, ok := s.accounts[userID]
	s.mu.Unlock()
	if ok {
		account.OnExternalCountChange(count)
	}
}
