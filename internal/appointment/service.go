package appointment

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/Gk2403-techi/greenscape/internal/logging"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidEmail  = errors.New("invalid email address")
)

type Service struct {
	repo       Repository
	mailer     Mailer
	adminEmail string
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(repo Repository, mailer Mailer, adminEmail string, logger *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logging.OrNop(logger),
		now:        time.Now,
	}
}

// Schedule records the request and emails the details to the admin with
// the submitter on copy. The appointment is kept even when sending fails.
func (s *Service) Schedule(ctx context.Context, req Request) (*Appointment, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Date = strings.TrimSpace(req.Date)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Date == "" {
		return nil, ErrMissingFields
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(req.Message) == "" {
		req.Message = DefaultMessage
	}

	a := &Appointment{
		ID:        ulid.Make().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Message:   req.Message,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save appointment: %w", err)
	}

	recipients := []string{a.Email}
	if s.adminEmail != "" && !strings.EqualFold(s.adminEmail, a.Email) {
		recipients = append([]string{s.adminEmail}, recipients...)
	}

	if err := s.mailer.Send(ctx, notification(a, recipients)); err != nil {
		return a, fmt.Errorf("send appointment %s: %w", a.ID, err)
	}

	s.logger.Info("consultation scheduled", zap.String("appointment_id", a.ID))
	return a, nil
}

func notification(a *Appointment, to []string) Email {
	body := fmt.Sprintf(`A new consultation request has been submitted. This email serves as a notification for the admin and a confirmation copy for the user.

--- Submitted Details ---

Name: %s
Email: %s
Phone: %s
Preferred Date: %s
Message:
%s
`, a.Name, a.Email, a.Phone, a.Date, a.Message)

	return Email{
		To:      to,
		Subject: fmt.Sprintf("GreenScape Consultation Request Details (%s)", a.Name),
		Body:    body,
	}
}
