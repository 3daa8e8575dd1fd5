package get_unread_count

import (
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
)

// UnreadCountResponse HTTP response model
type UnreadCountResponse struct {
	Success     bool `json:"success"`
	UnreadCount int  `json:"unreadCount"`
}

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications/unread-count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	result, err := h.service.UnreadCount(r.Context(), caller)
	if err != nil {
		h.logger.Error("GET /notifications/unread-count - Failed to count: user_id=%d, error=%v", caller.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UnreadCountResponse{
		Success:     true,
		UnreadCount: result.UnreadCount,
	})
}
