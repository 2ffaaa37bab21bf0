package application

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/shopspring/decimal"

	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

const defaultClientLimit = 2

// ProfessionTotal is the earnings of one profession over a date range.
type ProfessionTotal struct {
	Profession string          `json:"profession"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}

// ClientTotal is the amount one client paid over a date range.
type ClientTotal struct {
	ClientID  string          `json:"client_id"`
	FullName  string          `json:"full_name"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// AnalyticsService folds grouped, ranked sums over the paid-job snapshot.
// The snapshot is one repository query, so sums cannot mix data from before
// and after a concurrent settlement.
type AnalyticsService struct {
	Jobs repository.JobRepository

	// Search over indexed payment receipts (admin surface).
	ES      *elasticsearch.Client
	ESIndex string
}

func NewAnalyticsService(jobs repository.JobRepository, es *elasticsearch.Client, esIndex string) *AnalyticsService {
	return &AnalyticsService{Jobs: jobs, ES: es, ESIndex: esIndex}
}

// BestProfession returns the profession with the highest total paid amount
// for jobs whose payment date falls within [from, to], bounds inclusive,
// open-ended when nil. Equal sums break toward the lexicographically
// smallest profession name so results are deterministic.
func (s *AnalyticsService) BestProfession(ctx context.Context, from, to *time.Time) (*ProfessionTotal, error) {
	rows, err := s.Jobs.ListPaidBetween(ctx, from, to)
	if err != nil {
		return nil, apperror.Internal("load paid jobs", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NotFound("no paid jobs in range")
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.Profession] = totals[r.Profession].Add(r.Price)
	}

	var best *ProfessionTotal
	for profession, total := range totals {
		switch {
		case best == nil,
			total.GreaterThan(best.TotalPaid),
			total.Equal(best.TotalPaid) && profession < best.Profession:
			best = &ProfessionTotal{Profession: profession, TotalPaid: total}
		}
	}
	return best, nil
}

// BestClients returns up to limit clients ranked by total amount paid over
// the range, descending. Limit defaults to 2 when zero; negative values are
// rejected. Equal totals order by ascending client id.
func (s *AnalyticsService) BestClients(ctx context.Context, from, to *time.Time, limit int) ([]ClientTotal, error) {
	if limit == 0 {
		limit = defaultClientLimit
	}
	if limit < 0 {
		return nil, apperror.InvalidArgument("limit must be a positive integer").
			With("limit", limit)
	}

	rows, err := s.Jobs.ListPaidBetween(ctx, from, to)
	if err != nil {
		return nil, apperror.Internal("load paid jobs", err)
	}

	totals := make(map[string]*ClientTotal, len(rows))
	for _, r := range rows {
		t, ok := totals[r.ClientID]
		if !ok {
			t = &ClientTotal{ClientID: r.ClientID, FullName: r.ClientName}
			totals[r.ClientID] = t
		}
		t.TotalPaid = t.TotalPaid.Add(r.Price)
	}

	out := make([]ClientTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalPaid.Equal(out[j].TotalPaid) {
			return out[i].TotalPaid.GreaterThan(out[j].TotalPaid)
		}
		return out[i].ClientID < out[j].ClientID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SearchPayments runs a multi_match query against the payments index.
func (s *AnalyticsService) SearchPayments(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"client_name^2", "contractor_id", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
