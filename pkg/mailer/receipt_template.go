package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Payment receipt</h2>
    <p>Your payment was processed successfully.</p>
    <table cellpadding="6">
      <tr><td><strong>Job</strong></td><td>{{.JobID}}</td></tr>
      {{if .Description}}<tr><td><strong>Description</strong></td><td>{{.Description}}</td></tr>{{end}}
      <tr><td><strong>Amount</strong></td><td>{{.Amount}}</td></tr>
      <tr><td><strong>Date</strong></td><td>{{.PaidAt.Format "02 January 2006, 15:04 MST"}}</td></tr>
    </table>
  </body>
</html>`))

// RenderReceipt produces subject, plain-text, and HTML bodies for a receipt.
func RenderReceipt(job ReceiptJob) (subject, text, html string, err error) {
	subject = fmt.Sprintf("Payment receipt for job %s", job.JobID)
	text = fmt.Sprintf("Your payment of %s for job %s was processed on %s.",
		job.Amount, job.JobID, job.PaidAt.Format("02 January 2006, 15:04 MST"))

	var buf bytes.Buffer
	if err = receiptTmpl.Execute(&buf, job); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}
