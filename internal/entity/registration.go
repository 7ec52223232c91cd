package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Registration lifecycle statuses.
const (
	StatusWaitingPayment = "WAITING_PAYMENT"
	StatusPaid           = "PAID"
	StatusSubmitted      = "SUBMITTED"
	StatusActive         = "ACTIVE"
	StatusRejected       = "REJECTED"
)

var ErrRegistrationNotFound = errors.New("registration not found")

// Registration is the multi-step purchase session: personal data, address,
// questionnaire answers, consent and payment state, pinned to a SPAJ number
// once the admin system has issued one.
type Registration struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	ProductCode string `json:"product_code"`
	PackageCode string `json:"package_code"`
	TermCode    string `json:"term_code"`

	Name      string  `json:"name"`
	Email     string  `json:"email"`
	NIK       string  `json:"nik"`
	Phone     string  `json:"phone"`
	BirthDate string  `json:"birth_date"`
	Gender    int     `json:"gender"`
	Address   Address `json:"address"`

	Answers []QuestionAnswer `json:"answers"`

	ConsentAccepted   bool      `json:"consent_accepted"`
	ConsentAcceptedAt time.Time `json:"consent_accepted_at"`
	ConsentVersion    string    `json:"consent_version"`

	SPAJNumber    string  `json:"spaj_number"`
	PremiumAmount float64 `json:"premium_amount"`
	PaymentMethod string  `json:"payment_method"`
	DocumentURL   string  `json:"document_url,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	FindByID(ctx context.Context, id string) (*Registration, error)
	FindBySPAJ(ctx context.Context, spajNumber string) (*Registration, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateDocumentURL(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
}

// NewRegistration builds a registration with ID and timestamps set.
func NewRegistration(productCode, packageCode, termCode string) *Registration {
	return &Registration{
		ID:          uuid.New().String(),
		ProductCode: productCode,
		PackageCode: packageCode,
		TermCode:    termCode,
		Status:      StatusWaitingPayment,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func (r *Registration) Validate() error {
	if r.ProductCode == "" {
		return errors.New("product code is required")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.NIK == "" {
		return errors.New("nik is required")
	}
	if r.Address.Street == "" {
		return errors.New("address street is required")
	}
	return nil
}
