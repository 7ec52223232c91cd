package usecase

import "github.com/xavierca1/insura-microsite/internal/entity"

type SubmitRegistrationInput struct {
	Slug        string `json:"slug"`
	ProductCode string `json:"product_code"`
	PackageCode string `json:"package_code"`
	TermCode    string `json:"term_code"`

	Name      string `json:"name"`
	Email     string `json:"email"`
	NIK       string `json:"nik"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`

	Street      string `json:"street"`
	Number      string `json:"number"`
	RT          string `json:"rt"`
	RW          string `json:"rw"`
	Province    string `json:"province"`
	City        string `json:"city"`
	District    string `json:"district"`
	Subdistrict string `json:"subdistrict"`
	PostalCode  string `json:"postal_code"`

	Answers []entity.QuestionAnswer `json:"answers"`

	ConsentAccepted   bool   `json:"consent_accepted"`
	ConsentAcceptedAt string `json:"consent_accepted_at"`
	ConsentVersion    string `json:"consent_version"`

	PaymentMethod string `json:"payment_method"`
}

type SubmitRegistrationOutput struct {
	ID         string         `json:"id"`
	SPAJNumber string         `json:"spaj_number"`
	Status     string         `json:"status"`
	Premium    entity.Premium `json:"premium"`
	Payment    entity.Payment `json:"payment"`
	Msg        string         `json:"msg"`
}

// ConfirmPaymentInput carries what the payment webhook knows.
type ConfirmPaymentInput struct {
	SPAJNumber string
	Event      string
}
