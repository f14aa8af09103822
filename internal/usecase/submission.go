package usecase

import (
	"context"
	"fmt"
	"strings"

	"salon-relay-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type submissionUsecase struct {
	notifier domain.Notifier
	validate *validator.Validate
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(notifier domain.Notifier, validate *validator.Validate) domain.SubmissionUsecase {
	return &submissionUsecase{
		notifier: notifier,
		validate: validate,
	}
}

// Submit validates the request and relays it to the operator channel.
// Validation here is intentionally redundant with the binding tags: the
// endpoint must hold its contract even for callers that bypass the form.
func (uc *submissionUsecase) Submit(ctx context.Context, req *domain.SubmissionRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.NewValidationError("Укажите имя")
	}
	if strings.TrimSpace(req.Contact) == "" {
		return domain.NewValidationError("Укажите контакт для связи")
	}
	if len(req.Services) == 0 {
		return domain.NewValidationError("Выберите хотя бы одну услугу")
	}
	if err := uc.validate.Struct(req); err != nil {
		return domain.NewValidationError("Некорректные данные заявки")
	}

	if !uc.notifier.IsConfigured() {
		return domain.ErrNotConfigured
	}

	if err := uc.notifier.Send(ctx, BuildRelayMessage(req)); err != nil {
		return fmt.Errorf("failed to relay submission: %w", err)
	}

	return nil
}

// BuildRelayMessage renders the operator notification text. Line order and
// bullet format are fixed: equal requests always produce identical bytes.
func BuildRelayMessage(req *domain.SubmissionRequest) string {
	var b strings.Builder
	b.WriteString("📩 Новая заявка с сайта!\n\n")
	fmt.Fprintf(&b, "👤 Имя: %s\n", strings.TrimSpace(req.Name))
	fmt.Fprintf(&b, "📱 Контакт: %s\n\n", strings.TrimSpace(req.Contact))
	b.WriteString("🔧 Услуги:\n")
	for i, service := range req.Services {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  • %s", service)
	}
	return b.String()
}
