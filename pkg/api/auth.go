package api

// RegisterRequest представляет запрос на регистрацию нового пользователя каталога
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`        // username пользователя
	Password string `json:"password" validate:"required,min=12,max=256"` // пароль в открытом виде, хешируется на сервере
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"user_id"` // UUID пользователя
	Message string `json:"message"` // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	UserID      string `json:"user_id"`      // UUID пользователя
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
