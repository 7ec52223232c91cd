package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xavierca1/insura-microsite/internal/entity"
)

type RegistrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *entity.Registration) error {
	address, err := json.Marshal(reg.Address)
	if err != nil {
		return fmt.Errorf("marshal address: %w", err)
	}
	answers, err := json.Marshal(reg.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	query := `
		INSERT INTO registrations (
			id,
			slug,
			product_code,
			package_code,
			term_code,
			name,
			email,
			nik,
			phone,
			birth_date,
			gender,
			address,
			answers,
			consent_accepted,
			consent_accepted_at,
			consent_version,
			spaj_number,
			premium_amount,
			payment_method,
			status,
			created_at,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12::jsonb, $13::jsonb,
			$14, $15, $16, $17, $18, $19, $20, $21, $22
		)
	`

	_, err = r.DB.ExecContext(ctx, query,
		reg.ID,
		reg.Slug,
		reg.ProductCode,
		reg.PackageCode,
		reg.TermCode,
		reg.Name,
		reg.Email,
		reg.NIK,
		reg.Phone,
		reg.BirthDate,
		reg.Gender,
		address,
		answers,
		reg.ConsentAccepted,
		reg.ConsentAcceptedAt,
		reg.ConsentVersion,
		reg.SPAJNumber,
		reg.PremiumAmount,
		reg.PaymentMethod,
		reg.Status,
		reg.CreatedAt,
		reg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*entity.Registration, error) {
	return r.findByField(ctx, "id", id)
}

func (r *RegistrationRepository) FindBySPAJ(ctx context.Context, spajNumber string) (*entity.Registration, error) {
	return r.findByField(ctx, "spaj_number", spajNumber)
}

func (r *RegistrationRepository) findByField(ctx context.Context, column, value string) (*entity.Registration, error) {
	query := fmt.Sprintf(`
		SELECT
			id, slug, product_code, package_code, term_code,
			name, email, nik, phone, birth_date, gender,
			address, answers,
			consent_accepted, consent_accepted_at, consent_version,
			spaj_number, premium_amount, payment_method,
			COALESCE(document_url, ''), status, created_at, updated_at
		FROM registrations
		WHERE %s = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, column)

	var reg entity.Registration
	var address, answers []byte

	err := r.DB.QueryRowContext(ctx, query, value).Scan(
		&reg.ID,
		&reg.Slug,
		&reg.ProductCode,
		&reg.PackageCode,
		&reg.TermCode,
		&reg.Name,
		&reg.Email,
		&reg.NIK,
		&reg.Phone,
		&reg.BirthDate,
		&reg.Gender,
		&address,
		&answers,
		&reg.ConsentAccepted,
		&reg.ConsentAcceptedAt,
		&reg.ConsentVersion,
		&reg.SPAJNumber,
		&reg.PremiumAmount,
		&reg.PaymentMethod,
		&reg.DocumentURL,
		&reg.Status,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find registration by %s: %w", column, err)
	}

	if err := json.Unmarshal(address, &reg.Address); err != nil {
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &reg.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
	}

	return &reg, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE registrations SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}

func (r *RegistrationRepository) UpdateDocumentURL(ctx context.Context, id, url string) error {
	query := `UPDATE registrations SET document_url = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, url, id)
	return err
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM registrations WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
