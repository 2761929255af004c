package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/GoArmGo/RegisterApp/internal/core/ports"
	"github.com/GoArmGo/RegisterApp/internal/domain"
	"github.com/GoArmGo/RegisterApp/internal/usecase"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON object")

// RegistrationHandler — обработчик HTTP-запросов регистрации пользователей.
type RegistrationHandler struct {
	registration usecase.RegistrationUseCase
	logger       *slog.Logger
}

// NewRegistrationHandler создаёт новый экземпляр RegistrationHandler.
func NewRegistrationHandler(uc usecase.RegistrationUseCase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{registration: uc, logger: logger}
}

type registerRequest struct {
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Mobile   string    `json:"mobile"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// Register — POST /register.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	req, err := decodeRegisterRequest(r)
	if err != nil {
		h.logger.Warn("invalid request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	user, err := h.registration.Register(r.Context(), usecase.RegisterInput{
		UserName: req.UserName,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
	})

	var validationErr *domain.ValidationError
	var existsErr *domain.UserExistsError
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && r.Context().Err() != nil:
		// ответ 504 отправит middleware.Timeout
		h.logger.Warn("registration timed out", "username", req.UserName, "error", err)
		return
	case errors.As(err, &validationErr):
		h.logger.Info("registration rejected", "field", validationErr.Field)
		respondWithError(w, http.StatusBadRequest, validationErr.Message, h.logger)
		return
	case errors.As(err, &existsErr):
		respondWithError(w, http.StatusConflict, existsErr.Error(), h.logger)
		return
	default:
		h.logger.Error("registration failed", "username", req.UserName, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Registration failed", h.logger)
		return
	}

	h.logger.Info("user registered successfully", "user_id", user.ID)
	respondWithJSON(w, http.StatusCreated, registerResponse{
		Message: "Registration successful",
		User: userResponse{
			ID:       user.ID,
			UserName: user.UserName,
			Name:     user.Name,
			Email:    user.Email,
			Mobile:   user.Mobile,
		},
	}, h.logger)
}

// decodeRegisterRequest принимает JSON и application/x-www-form-urlencoded.
func decodeRegisterRequest(r *http.Request) (registerRequest, error) {
	var req registerRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.UserName = r.PostForm.Get("userName")
		req.Name = r.PostForm.Get("name")
		req.Email = r.PostForm.Get("email")
		req.Password = r.PostForm.Get("password")
		req.Mobile = r.PostForm.Get("mobile")
		return req, nil
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	// после объекта допускаются только пробелы
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, errTrailingData
	}
	return req, nil
}

// HealthHandler — GET /health, проверяет доступность БД.
func HealthHandler(checker ports.HealthChecker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.Ping(r.Context()); err != nil {
			logger.Error("health check failed", "error", err)
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, logger)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}
