package usecase

import (
	"context"

	"github.com/xavierca1/insura-microsite/internal/entity"
	"github.com/xavierca1/insura-microsite/internal/infra/integration/lifecore"
	"github.com/xavierca1/insura-microsite/internal/infra/queue"
)

// InsuranceGateway is the part of the lifecore client the registration
// usecases depend on.
type InsuranceGateway interface {
	CheckAvailability(ctx context.Context, input lifecore.CheckAvailabilityInput) (entity.Eligibility, error)
	ComputePremium(ctx context.Context, slug string, input lifecore.ComputePremiumInput) (entity.Premium, error)
	CreateSPAJ(ctx context.Context) (entity.SPAJ, error)
	PaymentInstructions(ctx context.Context, spajNumber string) (entity.Payment, error)
}

type QueueProducerInterface interface {
	PublishSubmission(ctx context.Context, payload queue.SubmissionPayload) error
}
