package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	notificationRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/notification"
	"github.com/m04kA/MedConnect-AppointmentService/internal/integrations/userservice"
	"github.com/m04kA/MedConnect-AppointmentService/internal/service/notifications/models"
)

const defaultListLimit = 50

// Service сервис уведомлений: создание по событиям записей и чтение получателем
type Service struct {
	notificationRepo NotificationRepository
	userClient       UserServiceClient
	metrics          Metrics
	listLimit        int
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений.
// listLimit ограничивает размер списка уведомлений.
func NewService(
	notificationRepo NotificationRepository,
	userClient UserServiceClient,
	metrics Metrics,
	listLimit int,
	logger Logger,
) *Service {
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}
	return &Service{
		notificationRepo: notificationRepo,
		userClient:       userClient,
		metrics:          metrics,
		listLimit:        listLimit,
		logger:           logger,
	}
}

// AppointmentRequested уведомляет врача о новой заявке пациента
func (s *Service) AppointmentRequested(ctx context.Context, a *domain.Appointment) error {
	patient := s.lookupUser(ctx, a.PatientID)
	return s.emit(ctx, &domain.Notification{
		RecipientID:          a.DoctorID,
		SenderID:             a.PatientID,
		Type:                 domain.NotificationAppointmentRequest,
		Message:              requestedMessage(patient, a),
		RelatedAppointmentID: &a.ID,
	})
}

// AppointmentResponded уведомляет пациента о подтверждении или отказе
func (s *Service) AppointmentResponded(ctx context.Context, a *domain.Appointment) error {
	doctor := s.lookupUser(ctx, a.DoctorID)

	n := &domain.Notification{
		RecipientID:          a.PatientID,
		SenderID:             a.DoctorID,
		RelatedAppointmentID: &a.ID,
	}
	switch a.Status {
	case domain.StatusConfirmed:
		n.Type = domain.NotificationAppointmentConfirmed
		n.Message = confirmedMessage(doctor, a)
	case domain.StatusRejected:
		n.Type = domain.NotificationAppointmentRejected
		n.Message = rejectedMessage(doctor, a)
	default:
		return fmt.Errorf("%w: appointment %d has status %s, not a response", ErrInternal, a.ID, a.Status)
	}

	return s.emit(ctx, n)
}

// AppointmentCancelled уведомляет второго участника об отмене
func (s *Service) AppointmentCancelled(ctx context.Context, a *domain.Appointment, cancelledBy int64) error {
	canceller := s.lookupUser(ctx, cancelledBy)
	return s.emit(ctx, &domain.Notification{
		RecipientID:          a.CounterpartOf(cancelledBy),
		SenderID:             cancelledBy,
		Type:                 domain.NotificationAppointmentCancelled,
		Message:              cancelledMessage(canceller, a),
		RelatedAppointmentID: &a.ID,
	})
}

// List последние уведомления получателя
func (s *Service) List(ctx context.Context, caller auth.Identity) (*models.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, caller.ID, s.listLimit)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications), nil
}

// UnreadCount число непрочитанных уведомлений
func (s *Service) UnreadCount(ctx context.Context, caller auth.Identity) (*models.UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(ctx, caller.ID)
	if err != nil {
		s.logger.Error("UnreadCount: repository error for user=%d: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: UnreadCount - repository error: %v", ErrInternal, err)
	}

	return &models.UnreadCountResponse{UnreadCount: count}, nil
}

// MarkRead отмечает уведомление прочитанным; чужое уведомление не найдено
func (s *Service) MarkRead(ctx context.Context, caller auth.Identity, id int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id, caller.ID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for user=%d", id, caller.ID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead отмечает все уведомления получателя прочитанными
func (s *Service) MarkAllRead(ctx context.Context, caller auth.Identity) (*models.MarkAllReadResponse, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, caller.ID)
	if err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%d: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: marked %d notifications as read for user=%d", updated, caller.ID)
	return &models.MarkAllReadResponse{Updated: updated}, nil
}

func (s *Service) emit(ctx context.Context, n *domain.Notification) error {
	created, err := s.notificationRepo.Create(ctx, n)
	if err != nil {
		s.metrics.IncNotificationFailure()
		return fmt.Errorf("%w: failed to store %s notification for user=%d: %v", ErrInternal, n.Type, n.RecipientID, err)
	}

	s.logger.Info("Emit: %s notification id=%d sent to user=%d", created.Type, created.ID, created.RecipientID)
	return nil
}

// lookupUser профиль для текста уведомления; nil, если UserService недоступен
func (s *Service) lookupUser(ctx context.Context, userID int64) *userservice.User {
	user, err := s.userClient.GetUserWithGracefulDegradation(ctx, userID)
	if err != nil {
		s.logger.Warn("Emit: using anonymous wording for user=%d: %v", userID, err)
		return nil
	}
	return user
}
