package auth

import (
	dto "bingo_backend/internal/api/dto/auth"
	"bingo_backend/internal/model"
	"bingo_backend/internal/service"
	"bingo_backend/pkg/req"
	"bingo_backend/pkg/resp"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
)

type HandlerDeps struct {
	Serv   service.AuthService
	Logger *log.Logger
}

type Handler struct {
	serv   service.AuthService
	logger *log.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger.WithPrefix("auth"),
	}
}

// Login Проверяет пароль ведущего и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	accessToken, err := h.serv.Login(r.Context(), requestBody.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPassword) {
			h.logger.Warn("caller login rejected")
			resp.WriteError(w, http.StatusUnauthorized, "wrong password")
			return
		}
		h.logger.Error("login failed", "err", err)
		resp.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
	})
}
