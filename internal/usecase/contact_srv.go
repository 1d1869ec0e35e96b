package usecase

import (
	"context"
	"fmt"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/form"
	"tourism-booking/internal/gateway"
	"tourism-booking/internal/metrics"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactService interface {
	SubmitContact(ctx context.Context, req *request.ContactRequest) error
}

type contactService struct {
	api      BookingsAPI
	notifier form.Notifier
	log      *zap.Logger
}

func NewContactService(api BookingsAPI, notifier form.Notifier, log *zap.Logger) ContactService {
	return &contactService{
		api:      api,
		notifier: notifier,
		log:      log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) SubmitContact(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact message validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	draft := &form.ContactDraft{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Subject:     req.Subject,
		Message:     req.Message,
	}

	ctrl := form.NewController(form.Config{
		Draft:          draft,
		Submit:         s.api.SubmitContact,
		Verifier:       gateway.NewPassThroughVerifier(req.RecaptchaToken),
		Notifier:       s.notifier,
		SuccessMessage: "Message sent successfully! We'll contact you soon.",
		Log:            s.log,
	})
	defer ctrl.Close()

	err := ctrl.Submit(ctx)
	metrics.IncBooking("contact", err == nil)
	if err != nil {
		return err
	}

	s.log.Info("Contact message forwarded upstream",
		zap.String("subject", req.Subject),
	)
	return nil
}
