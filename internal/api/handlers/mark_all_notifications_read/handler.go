package mark_all_notifications_read

import (
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
)

const msgMarkedAll = "All notifications marked as read"

// MarkAllReadResponse HTTP response model
type MarkAllReadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Updated int64  `json:"updated"`
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

// Handle PATCH /api/v1/notifications/read-all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	result, err := h.service.MarkAllRead(r.Context(), caller)
	if err != nil {
		h.logger.Error("PATCH /notifications/read-all - Failed to mark all read: user_id=%d, error=%v", caller.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /notifications/read-all - Marked %d notifications: user_id=%d", result.Updated, caller.ID)
	handlers.RespondJSON(w, http.StatusOK, MarkAllReadResponse{
		Success: true,
		Message: msgMarkedAll,
		Updated: result.Updated,
	})
}
