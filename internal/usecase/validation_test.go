package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/insura-microsite/internal/entity"
)

func validInput() SubmitRegistrationInput {
	return SubmitRegistrationInput{
		Slug:        "acme",
		ProductCode: "TERM-10",
		PackageCode: "SILVER",
		TermCode:    "12M",

		Name:      "Budi Santoso",
		Email:     "budi@example.com",
		NIK:       "3174051203900001",
		Phone:     "081234567890",
		BirthDate: "1990-03-12",
		Gender:    "1",

		Street:      "Jl. Fatmawati No. 10",
		Province:    "31",
		City:        "3171",
		District:    "317101",
		Subdistrict: "31710101",
		PostalCode:  "12430",

		Answers: []entity.QuestionAnswer{{QuestionID: "7", Answer: "N"}},

		ConsentAccepted:   true,
		ConsentAcceptedAt: "2025-01-10T09:00:00Z",
		ConsentVersion:    "v2",

		PaymentMethod: "VA",
	}
}

func fieldsOf(errs []ValidationError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateSubmitRegistrationInputAccepted(t *testing.T) {
	assert.Empty(t, ValidateSubmitRegistrationInput(validInput()))
}

func TestValidateSubmitRegistrationInputRequiredFields(t *testing.T) {
	errs := ValidateSubmitRegistrationInput(SubmitRegistrationInput{})
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "product_code")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "nik")
	assert.Contains(t, fields, "answers")
	assert.Contains(t, fields, "payment_method")
	assert.Contains(t, fields, "consent_accepted")
}

func TestValidateNIK(t *testing.T) {
	input := validInput()

	input.NIK = "12345"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "nik")

	// sixteen identical digits is a placeholder, not an identity number
	input.NIK = "1111111111111111"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "nik")

	input.NIK = "3174051203900001"
	assert.NotContains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "nik")
}

func TestValidatePhone(t *testing.T) {
	input := validInput()

	input.Phone = "12345"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "phone")

	input.Phone = "+62 812-3456-7890"
	assert.NotContains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "phone")

	input.Phone = "08123456789012345"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "phone")
}

func TestValidateBirthDate(t *testing.T) {
	input := validInput()

	input.BirthDate = "12-03-1990"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "birth_date")

	input.BirthDate = "2020-01-01"
	errs := ValidateSubmitRegistrationInput(input)
	assert.Contains(t, fieldsOf(errs), "birth_date")
	found := false
	for _, e := range errs {
		if e.Field == "birth_date" {
			found = true
			assert.Contains(t, e.Message, "18")
		}
	}
	assert.True(t, found)
}

func TestValidateGenderOptional(t *testing.T) {
	input := validInput()

	input.Gender = ""
	assert.NotContains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "gender")

	input.Gender = "3"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "gender")

	input.Gender = "2"
	assert.NotContains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "gender")
}

func TestValidatePostalCode(t *testing.T) {
	input := validInput()

	input.PostalCode = "1243"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "postal_code")

	input.PostalCode = "12 430"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "postal_code")

	input.PostalCode = "12430"
	assert.NotContains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "postal_code")
}

func TestValidateAnswers(t *testing.T) {
	input := validInput()

	input.Answers = nil
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "answers")

	input.Answers = []entity.QuestionAnswer{{QuestionID: "7", Answer: ""}}
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "answers")
}

func TestValidatePaymentMethod(t *testing.T) {
	input := validInput()

	input.PaymentMethod = "CASH"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "payment_method")

	for _, m := range []string{"VA", "CREDIT_CARD", "EWALLET"} {
		input.PaymentMethod = m
		assert.NotContains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "payment_method")
	}
}

func TestValidateConsent(t *testing.T) {
	input := validInput()

	input.ConsentAccepted = false
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "consent_accepted")

	input = validInput()
	input.ConsentAcceptedAt = "not-a-date"
	assert.Contains(t, fieldsOf(ValidateSubmitRegistrationInput(input)), "consent_accepted_at")
}
