package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"restaurant-recommender/config"
	"restaurant-recommender/logging"
	"restaurant-recommender/metrics"
	"restaurant-recommender/web-svc/internal/domain"

	"github.com/go-playground/validator/v10"
)

var ErrSendFailed = errors.New("feedback could not be sent")

const (
	LabelSubmitted = "Feedback Submitted"
	LabelSubmit    = "Submit Feedback"
)

// FeedbackReceipt tells the page how to update its submit control.
type FeedbackReceipt struct {
	Status        string `json:"status"`
	ButtonLabel   string `json:"button_label"`
	ReloadAfterMs int64  `json:"reload_after_ms,omitempty"`
	Error         string `json:"error,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, "; ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// SanitizePhone keeps digits only and caps the result at ten of them.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 10 {
				break
			}
		}
	}
	return b.String()
}

// ValidateFeedback sanitizes the phone number in place and checks the form.
func ValidateFeedback(form *domain.FeedbackForm) error {
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = SanitizePhone(form.Phone)

	err := formValidator().Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "phone" && fe.Tag() != "required":
		return "Please enter a valid 10-digit phone number."
	case fe.Tag() == "required":
		return fe.Field() + " is required"
	case fe.Tag() == "email":
		return "Please enter a valid email address."
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// TemplateParams fills every alias the mail template may refer to.
func TemplateParams(form domain.FeedbackForm, now time.Time) map[string]string {
	fullName := form.FirstName + " " + form.LastName
	return map[string]string{
		"from_name":  fullName,
		"from_email": form.Email,
		"message":    form.Feedback + "\n\nPhone: " + form.Phone,
		"first_name": form.FirstName,
		"last_name":  form.LastName,
		"phone":      form.Phone,
		"email":      form.Email,
		"feedback":   form.Feedback,
		"name":       fullName,
		"to_name":    "Restaurant Owner",
		"subject":    "Restaurant Feedback",
		"date":       now.Format("1/2/2006"),
	}
}

type FeedbackService struct {
	mailer    Mailer
	publisher EventPublisher
	qr        QRGenerator
	mail      config.MailConfig
	formLink  string
	now       func() time.Time
}

func NewFeedbackService(mailer Mailer, publisher EventPublisher, qr QRGenerator, mail config.MailConfig, publicURL string) *FeedbackService {
	return &FeedbackService{
		mailer:    mailer,
		publisher: publisher,
		qr:        qr,
		mail:      mail,
		formLink:  strings.TrimRight(publicURL, "/") + "/#Contact",
		now:       time.Now,
	}
}

func (s *FeedbackService) Submit(ctx context.Context, form domain.FeedbackForm) (FeedbackReceipt, error) {
	if err := ValidateFeedback(&form); err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("invalid").Inc()
		return FeedbackReceipt{}, err
	}

	log := logging.Component("feedback").With().Str("email", form.Email).Logger()
	log.Info().Str("service_id", s.mail.ServiceID).Str("template_id", s.mail.TemplateID).Msg("sending feedback email")

	if err := s.mailer.Send(ctx, s.mail.ServiceID, s.mail.TemplateID, TemplateParams(form, s.now())); err != nil {
		detail := err.Error()
		var described interface{ Detail() string }
		if errors.As(err, &described) {
			detail = described.Detail()
		}
		log.Error().Err(err).Str("detail", detail).Msg("failed to send feedback")
		metrics.FeedbackSubmissions.WithLabelValues("failed").Inc()
		return FeedbackReceipt{
			Status:      "failed",
			ButtonLabel: LabelSubmit,
			Error:       detail,
		}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	metrics.FeedbackSubmissions.WithLabelValues("sent").Inc()
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, domain.Event{
			Type:      domain.EventFeedbackSubmitted,
			Email:     form.Email,
			Timestamp: s.now(),
		}); err != nil {
			log.Warn().Err(err).Msg("failed to publish feedback event")
		}
	}

	return FeedbackReceipt{
		Status:        "sent",
		ButtonLabel:   LabelSubmitted,
		ReloadAfterMs: s.mail.ReloadAfter.Milliseconds(),
	}, nil
}

func (s *FeedbackService) QRCode() ([]byte, error) {
	return s.qr.Generate(s.formLink)
}
