package mailer

import "time"

// ReceiptJob is the JSON payload put on the RabbitMQ queue after a job is
// settled. The worker renders it into a receipt email for the client.
type ReceiptJob struct {
	To          string    `json:"to"`
	JobID       string    `json:"job_id"`
	Description string    `json:"description,omitempty"`
	Amount      string    `json:"amount"`
	PaidAt      time.Time `json:"paid_at"`
}
