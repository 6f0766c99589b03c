package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vedran77/devtree/internal/logger"
	"github.com/vedran77/devtree/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	log         *logger.Logger
}

func NewAuthHandler(authService *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}

	if err := h.authService.Register(r.Context(), input); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "El Email ya esta registrado")
		case errors.Is(err, service.ErrHandleTaken):
			writeError(w, http.StatusConflict, "El Handle ya esta en uso")
		default:
			h.log.Error("register failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Hubo un Error")
		}
		return
	}

	writeText(w, http.StatusCreated, "Registro Creado Exitosamente")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}

	signed, err := h.authService.Login(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			writeError(w, http.StatusNotFound, "El Email no esta registrado")
		case errors.Is(err, service.ErrWrongPassword):
			writeError(w, http.StatusUnauthorized, "La contraseña es incorrecta")
		default:
			h.log.Error("login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Hubo un Error")
		}
		return
	}

	// the frontend expects the raw token as the response body
	writeText(w, http.StatusOK, signed)
}
