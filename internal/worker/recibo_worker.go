package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibos: render the sale receipt as a
// PDF and email it to the customer. SMTP sends go through a circuit
// breaker; transient failures are re-enqueued with an attempt counter and
// land in the DLQ after maxAttempts.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/marco2712/POS-PROCESOS/internal/infra"
	"github.com/marco2712/POS-PROCESOS/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxReciboAttempts = 3

// ReciboJobPayload is the job envelope sent to QueueRecibos.
type ReciboJobPayload struct {
	VentaID string `json:"venta_id"`
	OrgID   string `json:"org_id"`
	ToEmail string `json:"to_email"`
}

// Mailer is the slice of infra.Mailer the worker needs.
type Mailer interface {
	SendRecibo(to, subject, body, pdfPath string) error
}

type ReciboWorker struct {
	ventaRepo      repository.VentaRepository
	orgRepo        repository.OrganizacionRepository
	mailer         Mailer
	cb             *infra.CircuitBreaker
	dispatcher     *Dispatcher
	rdb            redis.Cmdable
	pdfStoragePath string
}

func NewReciboWorker(
	ventaRepo repository.VentaRepository,
	orgRepo repository.OrganizacionRepository,
	mailer Mailer,
	cb *infra.CircuitBreaker,
	dispatcher *Dispatcher,
	rdb redis.Cmdable,
	pdfStoragePath string,
) *ReciboWorker {
	return &ReciboWorker{
		ventaRepo:      ventaRepo,
		orgRepo:        orgRepo,
		mailer:         mailer,
		cb:             cb,
		dispatcher:     dispatcher,
		rdb:            rdb,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single receipt job:
//  1. Parse ReciboJobPayload from the job envelope
//  2. Fetch the sale (items + products preloaded) and the organization
//  3. Render the PDF receipt
//  4. Send the email through the circuit breaker
//  5. On send failure, re-enqueue with attempts+1; DLQ after maxReciboAttempts
func (w *ReciboWorker) Process(ctx context.Context, job Job) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("recibo_worker: empty to_email — skipping")
		return
	}

	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("recibo_worker: invalid venta_id")
		return
	}
	orgID, err := uuid.Parse(payload.OrgID)
	if err != nil {
		log.Error().Str("org_id", payload.OrgID).Msg("recibo_worker: invalid org_id")
		return
	}

	venta, err := w.ventaRepo.FindByID(ctx, orgID, ventaID)
	if err != nil {
		// Likely rolled back after enqueue — nothing to deliver
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("recibo_worker: venta not found")
		return
	}

	orgNombre := "Recibo"
	if org, err := w.orgRepo.FindByID(ctx, orgID); err == nil {
		orgNombre = org.Nombre
	}

	pdfPath, err := infra.GenerateReciboPDF(venta, orgNombre, w.pdfStoragePath)
	if err != nil {
		// Send the email without attachment rather than dropping the receipt
		log.Warn().Err(err).Str("venta_id", payload.VentaID).Msg("recibo_worker: PDF generation failed")
		pdfPath = ""
	}

	subject := fmt.Sprintf("Recibo de venta %s — %s", venta.Numero, orgNombre)
	body := fmt.Sprintf("Adjunto encontrarás el recibo de tu compra %s.\nGracias por tu preferencia.", venta.Numero)

	sendErr := w.cb.Execute(func() error {
		return w.mailer.SendRecibo(payload.ToEmail, subject, body, pdfPath)
	})
	if sendErr == nil {
		log.Info().Str("to", payload.ToEmail).Str("venta_id", payload.VentaID).
			Msg("recibo_worker: recibo sent")
		return
	}

	attempts := job.Attempts + 1
	if attempts >= maxReciboAttempts {
		SendToDLQ(ctx, w.rdb, QueueRecibos, job.Type, job.Payload, sendErr.Error(), attempts)
		return
	}

	if errors.Is(sendErr, infra.ErrCircuitOpen) {
		log.Warn().Int("attempts", attempts).Msg("recibo_worker: circuit open — re-enqueueing")
	} else {
		log.Warn().Err(sendErr).Int("attempts", attempts).Msg("recibo_worker: send failed — re-enqueueing")
	}
	if err := w.dispatcher.enqueue(ctx, QueueRecibos, job.Type, payload, attempts); err != nil {
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("recibo_worker: re-enqueue failed")
	}
}
