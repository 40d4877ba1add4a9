package service

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/krishsharma1008/offsite/internal/model"
	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/google/uuid"
)

var errNotFound = sql.ErrNoRows

type fakeObjects struct {
	mu        sync.Mutex
	objects   map[string][]byte
	putErrs   []error
	putCalls  int
	deleted   []string
	deleteErr error
	headFn    func(key string) (bool, error)
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: make(map[string][]byte)}
}

func (f *fakeObjects) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	if len(f.putErrs) > 0 {
		err := f.putErrs[0]
		f.putErrs = f.putErrs[1:]
		return "", err
	}
	f.objects[key] = data
	return f.PublicURL(key), nil
}

func (f *fakeObjects) HeadObject(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.headFn != nil {
		return f.headFn(key)
	}
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeObjects) PublicURL(key string) string {
	return "https://storage.test/photos/" + key
}

type fakeStorage struct {
	mu      sync.Mutex
	photos  map[uuid.UUID]model.Photo
	counts  map[uuid.UUID]int
	saveErr error
	incErr  error
	decErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		photos: make(map[uuid.UUID]model.Photo),
		counts: make(map[uuid.UUID]int),
	}
}

func (f *fakeStorage) SavePhoto(ctx context.Context, photo *model.Photo) (*model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	photo.ID = uuid.New()
	photo.CreatedAt = time.Now()
	f.photos[photo.ID] = *photo
	return photo, nil
}

func (f *fakeStorage) GetAllPhotos(ctx context.Context, sortOpt shared.SortOption) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	photos := make([]model.Photo, 0, len(f.photos))
	for _, p := range f.photos {
		photos = append(photos, p)
	}
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos, nil
}

func (f *fakeStorage) GetUserPhotos(ctx context.Context, userID uuid.UUID) ([]model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var photos []model.Photo
	for _, p := range f.photos {
		if p.UserID == userID {
			photos = append(photos, p)
		}
	}
	return photos, nil
}

func (f *fakeStorage) GetPhoto(ctx context.Context, userID uuid.UUID, photoID uuid.UUID) (*model.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[photoID]
	if !ok || p.UserID != userID {
		return nil, errNotFound
	}
	return &p, nil
}

func (f *fakeStorage) DeletePhoto(ctx context.Context, userID uuid.UUID, photoID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[photoID]
	if !ok || p.UserID != userID {
		return errNotFound
	}
	delete(f.photos, photoID)
	return nil
}

func (f *fakeStorage) DeletePhotos(ctx context.Context, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.photos, id)
	}
	return nil
}

func (f *fakeStorage) GetPhotoCount(ctx context.Context, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[userID], nil
}

func (f *fakeStorage) UpdatePhotoCount(ctx context.Context, userID uuid.UUID, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[userID] = count
	return nil
}

func (f *fakeStorage) IncrementPhotoCount(ctx context.Context, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incErr != nil {
		return 0, f.incErr
	}
	f.counts[userID]++
	return f.counts[userID], nil
}

func (f *fakeStorage) DecrementPhotoCount(ctx context.Context, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.decErr != nil {
		return 0, f.decErr
	}
	if f.counts[userID] > 0 {
		f.counts[userID]--
	}
	return f.counts[userID], nil
}
