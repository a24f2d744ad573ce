package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/xavierca1/loanpulse/internal/infra/http/middleware"
	"github.com/xavierca1/loanpulse/internal/infra/integration/ocrspace"
	"github.com/xavierca1/loanpulse/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OCRClient is the slice of the OCR.space client the worker needs.
type OCRClient interface {
	ParseImage(ctx context.Context, imagePath string) (string, error)
	ParseImageURL(ctx context.Context, imageURL string) (string, error)
}

type ScanAttacher interface {
	Execute(ctx context.Context, input usecase.AttachScanResultsInput) (int, error)
}

type DigestSender interface {
	SendScanDigest(to, leadName string, extracted int) error
}

// Worker drains the scan queue: OCR the sheet, pull the rate/point rows out,
// attach them to the lead, tell the officer. It never touches the database
// directly.
type Worker struct {
	Channel  *amqp.Channel
	OCR      OCRClient
	Attacher ScanAttacher
	Mailer   DigestSender
}

func NewWorker(ch *amqp.Channel, ocr OCRClient, attacher ScanAttacher, mailer DigestSender) *Worker {
	return &Worker{
		Channel:  ch,
		OCR:      ocr,
		Attacher: attacher,
		Mailer:   mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack off, we ack after the attach commits
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ScanPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] invalid scan payload: %s", err)
				// Malformed message. Reject without requeue so it dead-letters
				// instead of blocking the queue.
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] processing scan for lead %s", payload.LeadID)

			if err := w.processScan(context.Background(), payload); err != nil {
				log.Printf("[WORKER] scan failed: %s", err)
				middleware.RecordScanProcessed("error")
				d.Nack(false, false)
			} else {
				middleware.RecordScanProcessed("ok")
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] scan worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processScan(ctx context.Context, payload ScanPayload) error {
	var (
		text string
		err  error
	)
	if payload.ImageURL != "" {
		text, err = w.OCR.ParseImageURL(ctx, payload.ImageURL)
	} else {
		text, err = w.OCR.ParseImage(ctx, payload.ImagePath)
	}
	if err != nil {
		middleware.RecordIntegrationError("ocrspace")
		return err
	}

	pairs := ocrspace.ExtractRatePoints(text)

	sheetDate := time.Now()
	if payload.RateSheetDate != "" {
		if parsed, perr := time.Parse("2006-01-02", payload.RateSheetDate); perr == nil {
			sheetDate = parsed
		}
	}

	attached, err := w.Attacher.Execute(ctx, usecase.AttachScanResultsInput{
		LeadID:        payload.LeadID,
		RateSheetDate: sheetDate,
		Pairs:         pairs,
	})
	if err != nil {
		return err
	}

	log.Printf("[WORKER] attached %d scenarios to lead %s", attached, payload.LeadID)

	if payload.OfficerEmail != "" {
		if err := w.Mailer.SendScanDigest(payload.OfficerEmail, payload.LeadName, attached); err != nil {
			// The scan already committed; a digest failure is not worth a
			// redelivery that would duplicate work.
			log.Printf("[WORKER] digest email failed: %s", err)
		}
	}

	return nil
}
