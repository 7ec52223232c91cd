package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/xavierca1/insura-microsite/internal/entity"
	"github.com/xavierca1/insura-microsite/internal/infra/integration/lifecore"
)

// SubmitRegistrationUseCase runs the purchase checkout: validation,
// eligibility check, premium computation, SPAJ creation, persistence and
// payment instructions. The registration then waits for the payment
// webhook; the proposal itself is submitted asynchronously afterwards.
type SubmitRegistrationUseCase struct {
	Repo    entity.RegistrationRepository
	Gateway InsuranceGateway
}

func NewSubmitRegistrationUseCase(repo entity.RegistrationRepository, gateway InsuranceGateway) *SubmitRegistrationUseCase {
	return &SubmitRegistrationUseCase{Repo: repo, Gateway: gateway}
}

func (uc *SubmitRegistrationUseCase) Execute(ctx context.Context, input SubmitRegistrationInput) (*SubmitRegistrationOutput, error) {
	validationErrors := ValidateSubmitRegistrationInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: errMsg}
	}

	eligibility, err := uc.Gateway.CheckAvailability(ctx, lifecore.CheckAvailabilityInput{
		NIK:         input.NIK,
		BirthDate:   input.BirthDate,
		ProductCode: input.ProductCode,
	})
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !eligibility.Eligible() {
		return nil, &DomainError{
			Code:    "NOT_ELIGIBLE",
			Message: "applicant is not eligible for this product: " + eligibility.Reason,
		}
	}

	genderInt, _ := strconv.Atoi(input.Gender)
	if genderInt <= 0 || genderInt > 2 {
		genderInt = 1
	}

	premium, err := uc.Gateway.ComputePremium(ctx, input.Slug, lifecore.ComputePremiumInput{
		ProductCode: input.ProductCode,
		PackageCode: input.PackageCode,
		TermCode:    input.TermCode,
		BirthDate:   input.BirthDate,
		Gender:      genderInt,
	})
	if err != nil {
		return nil, fmt.Errorf("premium computation failed: %w", err)
	}

	spaj, err := uc.Gateway.CreateSPAJ(ctx)
	if err != nil {
		return nil, fmt.Errorf("spaj creation failed: %w", err)
	}
	if spaj.Number == "" {
		return nil, &DomainError{Code: "SPAJ_FAILED", Message: "admin system did not issue a SPAJ number"}
	}

	reg := entity.NewRegistration(input.ProductCode, input.PackageCode, input.TermCode)
	reg.Slug = input.Slug
	reg.Name = input.Name
	reg.Email = input.Email
	reg.NIK = input.NIK
	reg.Phone = input.Phone
	reg.BirthDate = input.BirthDate
	reg.Gender = genderInt
	reg.Address = entity.Address{
		Street:      input.Street,
		Number:      input.Number,
		RT:          input.RT,
		RW:          input.RW,
		Province:    input.Province,
		City:        input.City,
		District:    input.District,
		Subdistrict: input.Subdistrict,
		PostalCode:  input.PostalCode,
	}
	reg.Answers = input.Answers
	reg.ConsentAccepted = input.ConsentAccepted
	reg.ConsentAcceptedAt = parseDateOrNow(input.ConsentAcceptedAt)
	reg.ConsentVersion = input.ConsentVersion
	reg.SPAJNumber = spaj.Number
	reg.PremiumAmount = premium.TotalPremium
	reg.PaymentMethod = input.PaymentMethod

	payment, err := uc.Gateway.PaymentInstructions(ctx, spaj.Number)
	if err != nil {
		return nil, &DomainError{
			Code:    "PAYMENT_FAILED",
			Message: "could not obtain payment instructions: " + err.Error(),
		}
	}

	txn := NewTransaction()
	txn.AddOperation("create_registration", func(ctx context.Context) error {
		return uc.Repo.Create(ctx, reg)
	})
	txn.AddCompensation("delete_registration", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, reg.ID)
	})
	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist registration: " + err.Error(),
		}
	}

	return &SubmitRegistrationOutput{
		ID:         reg.ID,
		SPAJNumber: reg.SPAJNumber,
		Status:     reg.Status,
		Premium:    premium,
		Payment:    payment,
		Msg:        "registration accepted, waiting for payment",
	}, nil
}

func parseDateOrNow(dateStr string) time.Time {
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Now()
	}
	return t
}
