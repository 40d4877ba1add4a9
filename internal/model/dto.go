package model

// ErrorMessage представляет сообщение об ошибке
// @Description Структура для сообщений об ошибках API
type ErrorMessage struct {
	Error string `json:"error" example:"Invalid credentials"`
}

// RegisterRequest содержит данные для регистрации нового пользователя
// @Description Структура запроса для регистрации участника события
type RegisterRequest struct {
	UserName string `json:"username" example:"user1"`
	Email    string `json:"email" example:"user1@example.com"`
	Password string `json:"password" example:"password123"`
}

// RefreshRequest содержит refresh токен для обновления access токена
// @Description Структура запроса для обновления токена доступа
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiJ9..." validate:"required"`
}

// RefreshResponse представляет ответ с обновленным access токеном
// @Description Структура ответа при успешном обновлении токена
type RefreshResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

// TokenResponse представляет ответ с токенами аутентификации
// @Description Структура ответа с access и refresh токенами
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

// ProfileResponse представляет профиль участника события
// @Description Структура ответа с профилем и состоянием пленки
type ProfileResponse struct {
	ID         string `json:"id" example:"06301788-e325-488f-94b5-1711e211b82a"`
	UserName   string `json:"username" example:"user1"`
	Email      string `json:"email" example:"user1@example.com"`
	PhotoCount int    `json:"photo_count" example:"3"`
	Remaining  int    `json:"remaining" example:"7"`
}

// ShotResponse представляет результат загрузки кадра
// @Description Структура ответа после загрузки кадра в хранилище
type ShotResponse struct {
	Success   bool   `json:"success" example:"true"`
	Count     int    `json:"count" example:"4"`
	Remaining int    `json:"remaining" example:"6"`
	Photo     *Photo `json:"photo,omitempty"`
}

// RollResponse представляет состояние пленки пользователя
// @Description Структура ответа с количеством сделанных и оставшихся кадров
type RollResponse struct {
	Taken     int `json:"taken" example:"4"`
	Remaining int `json:"remaining" example:"6"`
	MaxShots  int `json:"max_shots" example:"10"`
}

// ReconcileResponse представляет результат проверки осиротевших записей
// @Description Структура ответа после сверки метаданных с хранилищем
type ReconcileResponse struct {
	Deleted int `json:"deleted" example:"2"`
}

// FilterInfo описывает доступный фильтр камеры
// @Description Структура с идентификатором и названием фильтра
type FilterInfo struct {
	ID   string `json:"id" example:"noir"`
	Name string `json:"name" example:"Noir"`
}
