// Package respond пишет JSON ответы каталога в едином формате
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophbook/pkg/api"
)

// JSON отправляет data с заданным статусом
func JSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// Error отправляет api.ErrorResponse; Error содержит текст статуса, Message подробности
func Error(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	JSON(w, logger, status, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
