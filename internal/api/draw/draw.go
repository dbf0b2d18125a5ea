package draw

import (
	dto "bingo_backend/internal/api/dto/draw"
	"bingo_backend/internal/converter"
	"bingo_backend/internal/model"
	"bingo_backend/internal/service"
	"bingo_backend/pkg/resp"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
)

const resetMessage = "game reset"

type HandlerDeps struct {
	Serv   service.CallerService
	Logger *log.Logger
}

type Handler struct {
	serv   service.CallerService
	logger *log.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger.WithPrefix("api"),
	}
}

// Status История выпавших номеров для игроков и пульта
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.serv.Status(r.Context())
	if err != nil {
		h.logger.Error("status failed", "err", err)
		resp.WriteError(w, http.StatusInternalServerError, "status unavailable")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatusResponse(*status))
}

// Draw Вытянуть следующий номер
func (h *Handler) Draw(w http.ResponseWriter, r *http.Request) {
	number, err := h.serv.Draw(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrPoolExhausted) {
			resp.WriteError(w, http.StatusBadRequest, model.ErrPoolExhausted.Error())
			return
		}
		h.logger.Error("draw failed", "err", err)
		resp.WriteError(w, http.StatusInternalServerError, "draw failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDrawResponse(number))
}

// Reset Сбросить партию: история пуста, барабан полон
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Reset(r.Context()); err != nil {
		h.logger.Error("reset failed", "err", err)
		resp.WriteError(w, http.StatusInternalServerError, "reset failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: resetMessage})
}
