package services

import (
	"context"
	"time"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/apperr"
	"github.com/webnexa/api/pkg/logger"
	"github.com/webnexa/api/pkg/metrics"
	"github.com/webnexa/api/pkg/notify"
)

// SubmitInquiryInput is the validated contact-form payload.
type SubmitInquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// InquiryService handles contact-form submissions and the admin inbox.
type InquiryService struct {
	inquiries store.InquiryStore
	notifier  notify.Sink
}

func NewInquiryService(inquiries store.InquiryStore, notifier notify.Sink) *InquiryService {
	return &InquiryService{inquiries: inquiries, notifier: notifier}
}

// Submit persists a new inquiry and notifies the site owner. Notification
// failure never fails the submission: the inquiry is already stored, so the
// error is logged and counted instead.
func (s *InquiryService) Submit(ctx context.Context, in SubmitInquiryInput) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Service:     in.Service,
		Message:     in.Message,
		Status:      models.StatusNew,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.inquiries.Insert(ctx, inquiry); err != nil {
		return nil, apperr.Server(err)
	}
	metrics.InquiriesSubmitted.Inc()

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, *inquiry); err != nil {
			metrics.NotificationFailures.Inc()
			logger.WithCtx(ctx).Error("inquiry notification failed",
				"inquiry_id", inquiry.ID.Hex(),
				"error", err,
			)
		}
	}

	return inquiry, nil
}

// List returns every inquiry, newest submission first.
func (s *InquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	out, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, apperr.Server(err)
	}
	return out, nil
}

// UpdateStatus moves an inquiry through the triage workflow. An unknown
// status is rejected; an unknown or malformed id yields (nil, nil) so the
// handler can respond with a null document.
func (s *InquiryService) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	if !models.ValidStatus(status) {
		return nil, apperr.InvalidInput("Status must be one of: new, contacted, completed")
	}

	inquiry, err := s.inquiries.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperr.Server(err)
	}
	return inquiry, nil
}

// Delete removes an inquiry. Deleting an id that does not exist is not an
// error, so repeated deletes are safe.
func (s *InquiryService) Delete(ctx context.Context, id string) error {
	if err := s.inquiries.Delete(ctx, id); err != nil {
		return apperr.Server(err)
	}
	return nil
}
