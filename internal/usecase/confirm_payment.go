package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/insura-microsite/internal/entity"
	"github.com/xavierca1/insura-microsite/internal/infra/queue"
)

// ConfirmPaymentUseCase handles the payment webhook: flips the registration
// to PAID and enqueues the proposal submission for the worker. Replayed
// webhooks are ignored.
type ConfirmPaymentUseCase struct {
	Repo  entity.RegistrationRepository
	Queue QueueProducerInterface
}

func NewConfirmPaymentUseCase(repo entity.RegistrationRepository, producer QueueProducerInterface) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{Repo: repo, Queue: producer}
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, input ConfirmPaymentInput) error {
	reg, err := uc.Repo.FindBySPAJ(ctx, input.SPAJNumber)
	if err != nil {
		return fmt.Errorf("registration lookup for spaj %s: %w", input.SPAJNumber, err)
	}

	if reg.Status != entity.StatusWaitingPayment {
		log.Info().Str("spaj", input.SPAJNumber).Str("status", reg.Status).Msg("payment webhook replay ignored")
		return nil
	}

	if err := uc.Repo.UpdateStatus(ctx, reg.ID, entity.StatusPaid); err != nil {
		return fmt.Errorf("mark registration paid: %w", err)
	}

	payload := queue.SubmissionPayload{
		RegistrationID: reg.ID,
		SPAJNumber:     reg.SPAJNumber,
		Slug:           reg.Slug,
		ProductCode:    reg.ProductCode,
		Name:           reg.Name,
		Email:          reg.Email,
		Origin:         "WEBHOOK_PAYMENT",
	}
	if err := uc.Queue.PublishSubmission(ctx, payload); err != nil {
		log.Error().Err(err).Str("registration", reg.ID).Msg("CRITICAL: paid in database but submission not queued")
		return nil
	}

	return nil
}
