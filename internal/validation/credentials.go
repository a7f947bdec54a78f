// Package validation проверяет учетные данные каталога одинаково на клиенте и сервере
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32

	MinPasswordLen = 12
	// MaxPasswordLen ограничивает стоимость хеширования одного запроса
	MaxPasswordLen = 256
)

var (
	// ErrInvalidUsername возвращается для username вне допустимого формата
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword возвращается для слишком короткого или длинного пароля
	ErrInvalidPassword = errors.New("invalid password")
)

// usernamePattern латинские буквы, цифры и нижнее подчеркивание
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername проверяет длину и алфавит username
func ValidateUsername(username string) error {
	switch n := len(username); {
	case n == 0:
		return fmt.Errorf("%w: must not be empty", ErrInvalidUsername)
	case n < MinUsernameLen || n > MaxUsernameLen:
		return fmt.Errorf("%w: must be %d-%d characters long", ErrInvalidUsername, MinUsernameLen, MaxUsernameLen)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: only letters, digits and underscores are allowed", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword проверяет длину пароля в символах
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	switch {
	case n == 0:
		return fmt.Errorf("%w: must not be empty", ErrInvalidPassword)
	case n < MinPasswordLen:
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidPassword, MinPasswordLen)
	case n > MaxPasswordLen:
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidPassword, MaxPasswordLen)
	}
	return nil
}
