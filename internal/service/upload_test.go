package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/krishsharma1008/offsite/internal/capture"
	"github.com/krishsharma1008/offsite/internal/retry"
	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture() (*fakeStorage, *fakeObjects, *RollService, *UploadService) {
	storage := newFakeStorage()
	objects := newFakeObjects()
	rolls := NewRollService(storage)
	svc := NewUploadService(storage, objects, rolls, shared.DefaultEventName)
	svc.retryCfg = retry.Config{MaxAttempts: 3, BaseDelay: time.Millisecond}
	return storage, objects, rolls, svc
}

func testImage() *capture.EncodedImage {
	return &capture.EncodedImage{Data: []byte("jpeg-bytes"), Width: 640, Height: 480, FilterID: "original"}
}

func TestUploadSuccess(t *testing.T) {
	storage, objects, rolls, svc := newUploadFixture()
	userID := uuid.New()

	photo, count, err := svc.Upload(context.Background(), userID, testImage(), nil)
	require.NoError(t, err)
	require.NotNil(t, photo)

	assert.Equal(t, 1, count)
	assert.Equal(t, userID, photo.UserID)
	assert.Equal(t, shared.DefaultEventName, photo.EventName)
	assert.Contains(t, photo.PublicURL, photo.StoragePath)
	assert.Contains(t, objects.objects, photo.StoragePath)

	account, _ := rolls.Init(context.Background(), userID)
	assert.Equal(t, shared.MaxShots-1, account.Remaining())
	assert.Equal(t, 1, storage.counts[userID])
}

func TestUploadRetriesTransientFailureThenSucceeds(t *testing.T) {
	_, objects, _, svc := newUploadFixture()
	objects.putErrs = []error{errors.New("timeout"), errors.New("timeout")}

	events := make(chan UploadEvent, 8)
	_, count, err := svc.Upload(context.Background(), uuid.New(), testImage(), events)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, objects.putCalls)

	close(events)
	var retries int
	for ev := range events {
		if ev.Status == UploadRetrying {
			retries++
			assert.Equal(t, 3, ev.MaxAttempts)
		}
	}
	assert.Equal(t, 2, retries)
}

func TestUploadExhaustedRetriesLeavesNoTrace(t *testing.T) {
	storage, objects, rolls, svc := newUploadFixture()
	objects.putErrs = []error{errors.New("down"), errors.New("down"), errors.New("down")}
	userID := uuid.New()

	photo, _, err := svc.Upload(context.Background(), userID, testImage(), nil)
	require.Error(t, err)
	assert.Nil(t, photo)

	// Ни записи, ни объекта, счетчик не тронут — кадр не списан
	assert.Empty(t, storage.photos)
	assert.Empty(t, objects.objects)
	assert.Equal(t, 0, storage.counts[userID])

	account, _ := rolls.Init(context.Background(), userID)
	assert.Equal(t, shared.MaxShots, account.Remaining())
}

func TestUploadRejectedWhenRollFull(t *testing.T) {
	storage, objects, _, svc := newUploadFixture()
	userID := uuid.New()
	storage.counts[userID] = shared.MaxShots

	_, count, err := svc.Upload(context.Background(), userID, testImage(), nil)
	require.ErrorIs(t, err, ErrRollFull)
	assert.Equal(t, shared.MaxShots, count)

	// До хранилища дело не дошло
	assert.Equal(t, 0, objects.putCalls)
}

func TestUploadCompensatesFailedInsert(t *testing.T) {
	storage, objects, rolls, svc := newUploadFixture()
	storage.saveErr = errors.New("insert failed")
	userID := uuid.New()

	_, _, err := svc.Upload(context.Background(), userID, testImage(), nil)
	require.Error(t, err)

	// Объект удален компенсацией, записи нет, счетчик не изменился
	assert.Empty(t, storage.photos)
	assert.Empty(t, objects.objects)
	assert.Len(t, objects.deleted, 1)
	assert.Equal(t, 0, storage.counts[userID])

	account, _ := rolls.Init(context.Background(), userID)
	assert.Equal(t, shared.MaxShots, account.Remaining())
}

func TestUploadCompensationFailureIsNotEscalated(t *testing.T) {
	storage, objects, _, svc := newUploadFixture()
	storage.saveErr = errors.New("insert failed")
	objects.deleteErr = errors.New("delete failed too")

	_, _, err := svc.Upload(context.Background(), uuid.New(), testImage(), nil)
	require.Error(t, err)
	// Наверх уходит ошибка вставки, а не компенсации
	assert.Contains(t, err.Error(), "insert failed")
}

func TestUploadSingleFlightPerUser(t *testing.T) {
	_, _, _, svc := newUploadFixture()
	userID := uuid.New()

	require.True(t, svc.acquire(userID))
	_, _, err := svc.Upload(context.Background(), userID, testImage(), nil)
	assert.ErrorIs(t, err, ErrUploadInFlight)
	svc.release(userID)

	// Другой пользователь не блокируется
	_, _, err = svc.Upload(context.Background(), uuid.New(), testImage(), nil)
	assert.NoError(t, err)
}

func TestUploadFallsBackWhenCounterWriteFails(t *testing.T) {
	storage, _, rolls, svc := newUploadFixture()
	storage.incErr = errors.New("counter unavailable")
	userID := uuid.New()

	photo, count, err := svc.Upload(context.Background(), userID, testImage(), nil)
	require.NoError(t, err)
	require.NotNil(t, photo)

	// Кэш двинулся локально, несмотря на сбой авторитетной записи
	assert.Equal(t, 1, count)
	account, _ := rolls.Init(context.Background(), userID)
	assert.Equal(t, 1, account.Taken())
}

func TestUploadLastShotEmptiesRoll(t *testing.T) {
	storage, _, rolls, svc := newUploadFixture()
	userID := uuid.New()
	storage.counts[userID] = shared.MaxShots - 1

	_, count, err := svc.Upload(context.Background(), userID, testImage(), nil)
	require.NoError(t, err)
	assert.Equal(t, shared.MaxShots, count)

	account, _ := rolls.Init(context.Background(), userID)
	assert.Equal(t, 0, account.Remaining())
	assert.False(t, account.CanCapture())

	// Одиннадцатый кадр отклоняется до обращения к хранилищу
	_, _, err = svc.Upload(context.Background(), userID, testImage(), nil)
	assert.ErrorIs(t, err, ErrRollFull)
}
