package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/pkg/response"
)

// writeDomainError maps a domain error onto the response envelope. The kind
// decides the status; structured context travels in error.details.
func writeDomainError(c *gin.Context, err error) {
	details := map[string]any{"kind": apperror.KindOf(err).String()}
	if fields := apperror.FieldsOf(err); len(fields) > 0 {
		details["details"] = fields
	}
	// Internal failure details are logged, not echoed to callers.
	msg := "request failed"
	if apperror.KindOf(err) != apperror.KindInternal {
		msg = err.Error()
	}
	response.Error[any](c, apperror.HTTPStatus(err), msg, details)
}

func jobJSON(j *entity.Job) gin.H {
	out := gin.H{
		"id":          j.ID,
		"contract_id": j.ContractID,
		"description": j.Description,
		"price":       j.Price.StringFixed(2),
		"paid":        j.Paid,
	}
	if j.PaymentDate != nil {
		out["payment_date"] = j.PaymentDate.UTC()
	}
	return out
}

func profileJSON(p *entity.Profile) gin.H {
	return gin.H{
		"id":         p.ID,
		"type":       p.Type,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"profession": p.Profession,
		"balance":    p.Balance.StringFixed(2),
		"avatar_url": p.AvatarURL,
	}
}

func contractJSON(c *entity.Contract) gin.H {
	return gin.H{
		"id":            c.ID,
		"client_id":     c.ClientID,
		"contractor_id": c.ContractorID,
		"terms":         c.Terms,
		"status":        c.Status,
		"created_at":    c.CreatedAt,
	}
}

// parseDateBound parses a range bound: either a date-only value or RFC3339.
// Date-only end bounds stretch to the end of the day so the bound stays
// inclusive.
func parseDateBound(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
