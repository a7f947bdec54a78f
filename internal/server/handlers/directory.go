package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophbook/internal/server/middleware"
	"github.com/iudanet/gophbook/internal/server/respond"
	"github.com/iudanet/gophbook/internal/server/storage"
	"github.com/iudanet/gophbook/pkg/api"
)

// DirectoryHandler обслуживает контакты и группы каталога
type DirectoryHandler struct {
	logger    *slog.Logger
	directory storage.DirectoryStorage
}

// NewDirectoryHandler создает handler каталога
func NewDirectoryHandler(logger *slog.Logger, directory storage.DirectoryStorage) *DirectoryHandler {
	return &DirectoryHandler{
		logger:    logger,
		directory: directory,
	}
}

// userID извлекает пользователя, установленного AuthMiddleware
func (h *DirectoryHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "user_id not found in context")
		respond.Error(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}

// resourceName восстанавливает имя ресурса из {id} маршрута
func resourceName(r *http.Request, prefix string) string {
	return prefix + mux.Vars(r)["id"]
}

// storageError переводит ошибку хранилища в HTTP статус
func (h *DirectoryHandler) storageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, storage.ErrContactNotFound), errors.Is(err, storage.ErrGroupNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, storage.ErrETagMismatch):
		status, message = http.StatusPreconditionFailed, err.Error()
	case errors.Is(err, storage.ErrSystemGroup):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, storage.ErrGroupNameTaken):
		status, message = http.StatusConflict, err.Error()
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), op+" failed", slog.Any("error", err))
	} else {
		h.logger.WarnContext(r.Context(), op+" rejected", slog.Any("error", err))
	}
	respond.Error(w, h.logger, status, message)
}

// ListPeople обрабатывает GET /v1/people
func (h *DirectoryHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	people, err := h.directory.ListContacts(r.Context(), userID)
	if err != nil {
		h.storageError(w, r, "list contacts", err)
		return
	}

	respond.JSON(w, h.logger, http.StatusOK, api.ListConnectionsResponse{
		Connections: people,
		TotalPeople: len(people),
	})
}

// CreatePerson обрабатывает POST /v1/people
func (h *DirectoryHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var person api.Person
	if err := decodeJSON(w, r, &person); err != nil {
		respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.directory.CreateContact(r.Context(), userID, &person)
	if err != nil {
		// неизвестная группа в memberships это ошибка запроса, а не отсутствующий ресурс
		if errors.Is(err, storage.ErrGroupNotFound) {
			respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.storageError(w, r, "create contact", err)
		return
	}

	h.logger.InfoContext(r.Context(), "contact created",
		slog.String("user_id", userID),
		slog.String("resource_name", created.ResourceName))

	respond.JSON(w, h.logger, http.StatusCreated, created)
}

// UpdatePerson обрабатывает PUT /v1/people/{id}
func (h *DirectoryHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var person api.Person
	if err := decodeJSON(w, r, &person); err != nil {
		respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	name := resourceName(r, "people/")
	if person.ResourceName != "" && person.ResourceName != name {
		respond.Error(w, h.logger, http.StatusBadRequest, "resourceName does not match path")
		return
	}
	person.ResourceName = name

	updated, err := h.directory.UpdateContact(r.Context(), userID, &person)
	if err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.storageError(w, r, "update contact", err)
		return
	}

	respond.JSON(w, h.logger, http.StatusOK, updated)
}

// DeletePerson обрабатывает DELETE /v1/people/{id}
func (h *DirectoryHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	name := resourceName(r, "people/")
	if err := h.directory.DeleteContact(r.Context(), userID, name); err != nil {
		h.storageError(w, r, "delete contact", err)
		return
	}

	h.logger.InfoContext(r.Context(), "contact deleted",
		slog.String("user_id", userID),
		slog.String("resource_name", name))

	w.WriteHeader(http.StatusNoContent)
}

// ListGroups обрабатывает GET /v1/contactGroups
func (h *DirectoryHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	groups, err := h.directory.ListGroups(r.Context(), userID)
	if err != nil {
		h.storageError(w, r, "list groups", err)
		return
	}

	respond.JSON(w, h.logger, http.StatusOK, api.ListContactGroupsResponse{
		ContactGroups: groups,
		TotalItems:    len(groups),
	})
}

// decodeGroup читает группу и нормализует имя
func decodeGroup(w http.ResponseWriter, r *http.Request) (*api.ContactGroup, error) {
	var group api.ContactGroup
	if err := decodeJSON(w, r, &group); err != nil {
		return nil, err
	}
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return nil, errors.New("name: must not be blank")
	}
	return &group, nil
}

// CreateGroup обрабатывает POST /v1/contactGroups
func (h *DirectoryHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	group, err := decodeGroup(w, r)
	if err != nil {
		respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.directory.CreateGroup(r.Context(), userID, group)
	if err != nil {
		h.storageError(w, r, "create group", err)
		return
	}

	h.logger.InfoContext(r.Context(), "contact group created",
		slog.String("user_id", userID),
		slog.String("resource_name", created.ResourceName))

	respond.JSON(w, h.logger, http.StatusCreated, created)
}

// UpdateGroup обрабатывает PUT /v1/contactGroups/{id}
func (h *DirectoryHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	group, err := decodeGroup(w, r)
	if err != nil {
		respond.Error(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	name := resourceName(r, "contactGroups/")
	if group.ResourceName != "" && group.ResourceName != name {
		respond.Error(w, h.logger, http.StatusBadRequest, "resourceName does not match path")
		return
	}
	group.ResourceName = name

	updated, err := h.directory.UpdateGroup(r.Context(), userID, group)
	if err != nil {
		h.storageError(w, r, "update group", err)
		return
	}

	respond.JSON(w, h.logger, http.StatusOK, updated)
}

// DeleteGroup обрабатывает DELETE /v1/contactGroups/{id}
func (h *DirectoryHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	name := resourceName(r, "contactGroups/")
	if err := h.directory.DeleteGroup(r.Context(), userID, name); err != nil {
		h.storageError(w, r, "delete group", err)
		return
	}

	h.logger.InfoContext(r.Context(), "contact group deleted",
		slog.String("user_id", userID),
		slog.String("resource_name", name))

	w.WriteHeader(http.StatusNoContent)
}
