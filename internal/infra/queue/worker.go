package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/insura-microsite/internal/entity"
	"github.com/xavierca1/insura-microsite/internal/infra/integration/lifecore"
)

// ProposalGateway is the part of the lifecore client the worker drives.
type ProposalGateway interface {
	SubmitProposal(ctx context.Context, input lifecore.SubmitProposalInput) (any, error)
	ProposalStatus(ctx context.Context, spajNumber string) (entity.ProposalStatus, error)
	GenerateRiplay(ctx context.Context, slug, code string, input lifecore.GenerateRiplayInput) (entity.Document, error)
}

type MailSender interface {
	SendPolicyDocument(to, name, productCode, docLink string) error
}

// Worker consumes paid registrations and walks them through proposal
// submission, underwriting status polling, RIPLAY generation and the
// confirmation email.
type Worker struct {
	Channel *amqp.Channel
	Gateway ProposalGateway
	Repo    entity.RegistrationRepository
	Mail    MailSender

	StatusAttempts int
	StatusDelay    time.Duration
}

func NewWorker(ch *amqp.Channel, gateway ProposalGateway, repo entity.RegistrationRepository, mail MailSender) *Worker {
	return &Worker{
		Channel:        ch,
		Gateway:        gateway,
		Repo:           repo,
		Mail:           mail,
		StatusAttempts: 5,
		StatusDelay:    3 * time.Second,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("register RabbitMQ consumer")
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload SubmissionPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Error().Err(err).Msg("worker: malformed message, rejecting without requeue")
				d.Nack(false, false)
				continue
			}

			log.Info().Str("registration", payload.RegistrationID).Str("spaj", payload.SPAJNumber).Msg("worker: processing submission")

			if err := w.processSubmission(context.Background(), payload); err != nil {
				log.Error().Err(err).Str("registration", payload.RegistrationID).Msg("worker: submission failed")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Info().Str("queue", queueName).Msg("worker running")
	<-forever
}

func (w *Worker) processSubmission(ctx context.Context, payload SubmissionPayload) error {
	reg, err := w.Repo.FindByID(ctx, payload.RegistrationID)
	if err != nil {
		return fmt.Errorf("load registration: %w", err)
	}

	answers := make([]lifecore.AnswerInput, 0, len(reg.Answers))
	for _, a := range reg.Answers {
		answers = append(answers, lifecore.AnswerInput{QuestionID: a.QuestionID, Answer: a.Answer})
	}

	_, err = w.Gateway.SubmitProposal(ctx, lifecore.SubmitProposalInput{
		SPAJNumber:  reg.SPAJNumber,
		ProductCode: reg.ProductCode,
		PackageCode: reg.PackageCode,
		TermCode:    reg.TermCode,
		Holder: lifecore.ProposalHolder{
			Name:        reg.Name,
			NIK:         reg.NIK,
			Email:       reg.Email,
			Phone:       reg.Phone,
			BirthDate:   reg.BirthDate,
			Gender:      reg.Gender,
			Street:      reg.Address.Street,
			Province:    reg.Address.Province,
			City:        reg.Address.City,
			District:    reg.Address.District,
			Subdistrict: reg.Address.Subdistrict,
			PostalCode:  reg.Address.PostalCode,
		},
		Answers: answers,
	})
	if err != nil {
		return fmt.Errorf("submit proposal: %w", err)
	}

	if err := w.Repo.UpdateStatus(ctx, reg.ID, entity.StatusSubmitted); err != nil {
		return fmt.Errorf("mark submitted: %w", err)
	}

	status, err := w.pollStatus(ctx, reg.SPAJNumber)
	if err != nil {
		return err
	}

	if !status.Success {
		if err := w.Repo.UpdateStatus(ctx, reg.ID, entity.StatusRejected); err != nil {
			return fmt.Errorf("mark rejected: %w", err)
		}
		log.Info().Str("registration", reg.ID).Msg("worker: proposal rejected by underwriting")
		return nil
	}

	if err := w.Repo.UpdateStatus(ctx, reg.ID, entity.StatusActive); err != nil {
		return fmt.Errorf("mark active: %w", err)
	}

	doc, err := w.Gateway.GenerateRiplay(ctx, reg.Slug, reg.ProductCode, lifecore.GenerateRiplayInput{
		SPAJNumber:  reg.SPAJNumber,
		PackageCode: reg.PackageCode,
		TermCode:    reg.TermCode,
		Name:        reg.Name,
		Email:       reg.Email,
	})
	if err != nil {
		// the policy is active either way; the document can be regenerated
		// from the status page
		log.Error().Err(err).Str("registration", reg.ID).Msg("worker: riplay generation failed")
		return nil
	}

	if doc.URL != "" {
		if err := w.Repo.UpdateDocumentURL(ctx, reg.ID, doc.URL); err != nil {
			log.Error().Err(err).Str("registration", reg.ID).Msg("worker: storing document url failed")
		}
	}

	if w.Mail != nil {
		if err := w.Mail.SendPolicyDocument(reg.Email, reg.Name, reg.ProductCode, doc.URL); err != nil {
			log.Error().Err(err).Str("registration", reg.ID).Msg("worker: confirmation email failed")
		}
	}

	return nil
}

// pollStatus asks for the underwriting verdict a bounded number of times.
// The last observed verdict wins; transport errors burn an attempt.
func (w *Worker) pollStatus(ctx context.Context, spajNumber string) (entity.ProposalStatus, error) {
	var lastErr error
	for attempt := 0; attempt < w.StatusAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(w.StatusDelay)
		}
		status, err := w.Gateway.ProposalStatus(ctx, spajNumber)
		if err != nil {
			lastErr = err
			continue
		}
		return status, nil
	}
	return entity.ProposalStatus{}, fmt.Errorf("proposal status unavailable after %d attempts: %w", w.StatusAttempts, lastErr)
}
