package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/insura-microsite/internal/entity"
	"github.com/xavierca1/insura-microsite/internal/infra/integration/lifecore"
	"github.com/xavierca1/insura-microsite/internal/infra/queue"
)

type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg *entity.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegistrationRepository) FindByID(ctx context.Context, id string) (*entity.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) FindBySPAJ(ctx context.Context, spajNumber string) (*entity.Registration, error) {
	args := m.Called(ctx, spajNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRegistrationRepository) UpdateDocumentURL(ctx context.Context, id, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func (m *MockRegistrationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInsuranceGateway struct {
	mock.Mock
}

func (m *MockInsuranceGateway) CheckAvailability(ctx context.Context, input lifecore.CheckAvailabilityInput) (entity.Eligibility, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(entity.Eligibility), args.Error(1)
}

func (m *MockInsuranceGateway) ComputePremium(ctx context.Context, slug string, input lifecore.ComputePremiumInput) (entity.Premium, error) {
	args := m.Called(ctx, slug, input)
	return args.Get(0).(entity.Premium), args.Error(1)
}

func (m *MockInsuranceGateway) CreateSPAJ(ctx context.Context) (entity.SPAJ, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.SPAJ), args.Error(1)
}

func (m *MockInsuranceGateway) PaymentInstructions(ctx context.Context, spajNumber string) (entity.Payment, error) {
	args := m.Called(ctx, spajNumber)
	return args.Get(0).(entity.Payment), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishSubmission(ctx context.Context, payload queue.SubmissionPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
