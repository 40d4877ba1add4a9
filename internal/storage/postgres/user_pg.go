package postgres

import (
	"context"
	"database/sql"

	"github.com/krishsharma1008/offsite/internal/model"

	"github.com/google/uuid"
)

func (s *Storage) CreateUser(ctx context.Context, user model.User) error {
	_, err := s.DB.Exec(ctx,
		`INSERT INTO users (username, email, password, refresh_token, photo_count)
		 VALUES ($1, $2, $3, $4, 0)`,
		user.UserName, user.Email, user.Password, user.RefreshToken)
	return err
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, username, email, password, photo_count FROM users
		 WHERE email=$1`,
		email)

	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.PhotoCount)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, username, email, password, photo_count FROM users
		 WHERE id=$1`,
		id)

	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.PhotoCount)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByRefresh(ctx context.Context, refreshToken string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, username, email, password, refresh_token
		 FROM users
		 WHERE refresh_token=$1`,
		refreshToken)

	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET refresh_token=$1
		 WHERE id=$2`,
		refreshToken, id)
	return err
}

// GetPhotoCount читает авторитетное значение счетчика кадров пользователя
func (s *Storage) GetPhotoCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx,
		`SELECT photo_count FROM users WHERE id=$1`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Storage) UpdatePhotoCount(ctx context.Context, userID uuid.UUID, count int) error {
	res, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET photo_count=$1
		 WHERE id=$2`,
		count, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IncrementPhotoCount атомарно увеличивает счетчик и возвращает новое значение
func (s *Storage) IncrementPhotoCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx,
		`UPDATE users
		 SET photo_count = photo_count + 1
		 WHERE id=$1
		 RETURNING photo_count`,
		userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DecrementPhotoCount атомарно уменьшает счетчик, не опускаясь ниже нуля
func (s *Storage) DecrementPhotoCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx,
		`UPDATE users
		 SET photo_count = GREATEST(photo_count - 1, 0)
		 WHERE id=$1
		 RETURNING photo_count`,
		userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
