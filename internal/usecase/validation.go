package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSubmitRegistrationInput(input SubmitRegistrationInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Slug) == "" {
		errors = append(errors, ValidationError{"slug", "is required"})
	}
	if strings.TrimSpace(input.ProductCode) == "" {
		errors = append(errors, ValidationError{"product_code", "is required"})
	}
	if strings.TrimSpace(input.PackageCode) == "" {
		errors = append(errors, ValidationError{"package_code", "is required"})
	}
	if strings.TrimSpace(input.TermCode) == "" {
		errors = append(errors, ValidationError{"term_code", "is required"})
	}

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) < 3 {
		errors = append(errors, ValidationError{"name", "must have at least 3 characters"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.NIK == "" {
		errors = append(errors, ValidationError{"nik", "is required"})
	} else if !isValidNIK(input.NIK) {
		errors = append(errors, ValidationError{"nik", "must be 16 digits"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.BirthDate) == "" {
		errors = append(errors, ValidationError{"birth_date", "is required"})
	} else if !isValidDate(input.BirthDate) {
		errors = append(errors, ValidationError{"birth_date", "must be a valid date (YYYY-MM-DD)"})
	} else if isMinor(input.BirthDate) {
		errors = append(errors, ValidationError{"birth_date", "policy holder must be at least 18 years old"})
	}

	if input.Gender != "" && !isValidGender(input.Gender) {
		errors = append(errors, ValidationError{"gender", "must be 1 (male) or 2 (female)"})
	}

	if strings.TrimSpace(input.Street) == "" {
		errors = append(errors, ValidationError{"street", "is required"})
	}
	if strings.TrimSpace(input.Province) == "" {
		errors = append(errors, ValidationError{"province", "is required"})
	}
	if strings.TrimSpace(input.City) == "" {
		errors = append(errors, ValidationError{"city", "is required"})
	}
	if strings.TrimSpace(input.District) == "" {
		errors = append(errors, ValidationError{"district", "is required"})
	}
	if strings.TrimSpace(input.Subdistrict) == "" {
		errors = append(errors, ValidationError{"subdistrict", "is required"})
	}
	if !isValidPostalCode(input.PostalCode) {
		errors = append(errors, ValidationError{"postal_code", "must be a 5-digit postal code"})
	}

	if len(input.Answers) == 0 {
		errors = append(errors, ValidationError{"answers", "questionnaire answers are required"})
	} else {
		for _, a := range input.Answers {
			if strings.TrimSpace(a.QuestionID) == "" || strings.TrimSpace(a.Answer) == "" {
				errors = append(errors, ValidationError{"answers", "every answer needs a question_id and a value"})
				break
			}
		}
	}

	if input.PaymentMethod == "" {
		errors = append(errors, ValidationError{"payment_method", "is required"})
	} else if input.PaymentMethod != "VA" && input.PaymentMethod != "CREDIT_CARD" && input.PaymentMethod != "EWALLET" {
		errors = append(errors, ValidationError{"payment_method", "must be VA, CREDIT_CARD or EWALLET"})
	}

	if !input.ConsentAccepted {
		errors = append(errors, ValidationError{"consent_accepted", "must be accepted"})
	}
	if strings.TrimSpace(input.ConsentAcceptedAt) == "" {
		errors = append(errors, ValidationError{"consent_accepted_at", "is required when consent is accepted"})
	} else if !isValidDate(input.ConsentAcceptedAt) {
		errors = append(errors, ValidationError{"consent_accepted_at", "must be a valid ISO8601 datetime"})
	}

	return errors
}

func isValidNIK(nik string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(nik, "")
	if len(cleaned) != 16 {
		return false
	}

	firstDigit := cleaned[0]
	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != firstDigit {
			allEqual = false
			break
		}
	}
	return !allEqual
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339Nano, dateStr); err == nil {
		return true
	}
	return false
}

func isMinor(birthDate string) bool {
	t, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return true // invalid dates are rejected upstream anyway
	}
	age := time.Now().Year() - t.Year()
	if time.Now().YearDay() < t.YearDay() {
		age--
	}
	return age < 18
}

func isValidGender(gender string) bool {
	g := strings.TrimSpace(gender)
	return g == "1" || g == "2"
}

func isValidPostalCode(postalCode string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(postalCode, "")
	return len(cleaned) == 5 && cleaned == postalCode
}
