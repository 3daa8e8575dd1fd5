package get_notifications

import (
	"net/http"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/notifications/models"
)

// NotificationsResponse HTTP response model
type NotificationsResponse struct {
	Success       bool                          `json:"success"`
	Notifications []models.NotificationResponse `json:"notifications"`
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

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), caller)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: user_id=%d, error=%v", caller.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NotificationsResponse{
		Success:       true,
		Notifications: result.Notifications,
	})
}
