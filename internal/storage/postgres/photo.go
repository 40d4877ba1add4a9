package postgres

import (
	"context"
	"database/sql"

	"github.com/krishsharma1008/offsite/internal/model"
	"github.com/krishsharma1008/offsite/internal/shared"

	"github.com/google/uuid"
)

func (s *Storage) SavePhoto(ctx context.Context, photo *model.Photo) (*model.Photo, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO photos (user_id, storage_path, public_url, event_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		photo.UserID, photo.StoragePath, photo.PublicURL, photo.EventName,
	)
	if err := row.Scan(&photo.ID, &photo.CreatedAt); err != nil {
		return nil, err
	}
	return photo, nil
}

// GetAllPhotos возвращает все фотографии события для фотокниги вместе с именами авторов
func (s *Storage) GetAllPhotos(ctx context.Context, sort shared.SortOption) ([]model.Photo, error) {
	var orderBy string
	switch sort {
	case shared.SortUploadedNew:
		orderBy = " ORDER BY p.created_at DESC"
	case shared.SortUploadedOld:
		orderBy = " ORDER BY p.created_at ASC"
	case shared.SortRandom:
		orderBy = " ORDER BY RANDOM()"
	default:
		orderBy = " ORDER BY p.created_at DESC"
	}

	rows, err := s.DB.Query(ctx,
		`SELECT p.id, p.user_id, p.storage_path, p.public_url, p.event_name, p.created_at, u.username
		 FROM photos p
		 JOIN users u ON p.user_id = u.id`+orderBy,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.StoragePath, &p.PublicURL,
			&p.EventName, &p.CreatedAt, &p.UserName); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (s *Storage) GetUserPhotos(ctx context.Context, userID uuid.UUID) ([]model.Photo, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT id, user_id, storage_path, public_url, event_name, created_at
		 FROM photos
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.StoragePath, &p.PublicURL,
			&p.EventName, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (s *Storage) GetPhoto(ctx context.Context, userID uuid.UUID, photoID uuid.UUID) (*model.Photo, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, user_id, storage_path, public_url, event_name, created_at
		 FROM photos
		 WHERE user_id = $1 AND id = $2`, userID, photoID,
	)
	var p model.Photo
	if err := row.Scan(&p.ID, &p.UserID, &p.StoragePath, &p.PublicURL,
		&p.EventName, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) DeletePhoto(ctx context.Context, userID uuid.UUID, photoID uuid.UUID) error {
	res, err := s.DB.Exec(ctx,
		"DELETE FROM photos WHERE user_id = $1 AND id = $2", userID, photoID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeletePhotos удаляет пачку записей одним запросом (используется сверкой)
func (s *Storage) DeletePhotos(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.DB.Exec(ctx, "DELETE FROM photos WHERE id = ANY($1)", ids)
	return err
}
