package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vedran77/devtree/internal/logger"
	"github.com/vedran77/devtree/internal/service"
	"github.com/vedran77/devtree/internal/transport/http/middleware"
)

const maxImageMemory = 10 << 20 // 10 MiB buffered in memory, rest spills to disk

type UserHandler struct {
	userService *service.UserService
	log         *logger.Logger
}

func NewUserHandler(userService *service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// Me returns the session account. The password hash never serializes.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.CurrentUser(r.Context()))
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())

	var input service.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}

	if err := h.userService.UpdateProfile(r.Context(), user, input); err != nil {
		if errors.Is(err, service.ErrHandleTaken) {
			writeError(w, http.StatusConflict, "El Handle ya esta en uso")
			return
		}
		h.log.Error("update profile failed", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Error al actualizar el usuario")
		return
	}

	writeJSON(w, http.StatusOK, "Perfil actualizado correctamente")
}

func (h *UserHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())

	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		writeError(w, http.StatusInternalServerError, "Error al subir la imagen")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error al subir la imagen")
		return
	}
	defer file.Close()

	url, err := h.userService.UploadImage(r.Context(), user, file, header.Size, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.log.Error("upload image failed", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Error al subir la imagen")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image": url})
}

func (h *UserHandler) ByHandle(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")

	profile, err := h.userService.GetByHandle(r.Context(), handle)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "El usuario no existe")
			return
		}
		h.log.Error("get by handle failed", "error", err, "handle", handle)
		writeError(w, http.StatusInternalServerError, "Hubo un Error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Handle string `json:"handle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}

	handle, err := h.userService.CheckHandle(r.Context(), input.Handle)
	if err != nil {
		if errors.Is(err, service.ErrHandleTaken) {
			writeError(w, http.StatusConflict, "El usuario ya existe")
			return
		}
		h.log.Error("search handle failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Hubo un Error")
		return
	}

	writeJSON(w, http.StatusOK, fmt.Sprintf("%s esta Disponible", handle))
}
