package retry

import (
	"context"
	"errors"
	"time"
)

// Config задает параметры повторов с экспоненциальной выдержкой
type Config struct {
	MaxAttempts int           // Максимальное число попыток (по умолчанию 3)
	BaseDelay   time.Duration // Начальная задержка (по умолчанию 1 секунда)
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
	}
}

// OnRetry вызывается перед каждой повторной попыткой
type OnRetry func(attempt, maxAttempts int, delay time.Duration)

// Operation — одна попытка удаленной операции
type Operation func(ctx context.Context) error

type statusCoder interface {
	HTTPStatusCode() int
}

// IsClientError сообщает, несет ли цепочка ошибок клиентский HTTP-статус (4xx).
// Такие ошибки (авторизация, валидация) повторять бессмысленно
func IsClientError(err error) bool {
	var sc statusCoder
	if errors.As(err, &sc) {
		code := sc.HTTPStatusCode()
		return code >= 400 && code < 500
	}
	return false
}

// Do выполняет операцию с повторами: до cfg.MaxAttempts попыток, задержка
// BaseDelay * 2^n между ними (1s, 2s, 4s). Клиентские ошибки не повторяются.
// После исчерпания попыток возвращается последняя ошибка
func Do(ctx context.Context, cfg Config, onRetry OnRetry, op Operation) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 1 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if IsClientError(lastErr) {
			return lastErr
		}

		// Последняя попытка — отдаем ошибку наверх
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		delay := cfg.BaseDelay * (1 << attempt)
		if onRetry != nil {
			onRetry(attempt+1, cfg.MaxAttempts, delay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}
