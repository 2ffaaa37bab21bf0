package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

func paidRow(jobID, profession, clientID, clientName, price string, paidAt time.Time) repository.PaidJobRow {
	return repository.PaidJobRow{
		JobID:       jobID,
		Price:       dec(price),
		PaymentDate: paidAt,
		Profession:  profession,
		ClientID:    clientID,
		ClientName:  clientName,
	}
}

func snapshotRepo(rows []repository.PaidJobRow) *mockJobRepo {
	return &mockJobRepo{
		listPaidBetweenFunc: func(ctx context.Context, from, to *time.Time) ([]repository.PaidJobRow, error) {
			return rows, nil
		},
	}
}

func TestBestProfession_SumsAcrossJobs(t *testing.T) {
	now := time.Now()
	rows := []repository.PaidJobRow{
		paidRow("j1", "Musician", "c1", "Harry Potter", "100.00", now),
		paidRow("j2", "Musician", "c2", "Mr Robot", "50.00", now),
		paidRow("j3", "Programmer", "c1", "Harry Potter", "120.00", now),
	}

	svc := application.NewAnalyticsService(snapshotRepo(rows), nil, "")
	best, err := svc.BestProfession(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("BestProfession: %v", err)
	}
	if best.Profession != "Musician" {
		t.Errorf("expected Musician, got %s", best.Profession)
	}
	if !best.TotalPaid.Equal(dec("150.00")) {
		t.Errorf("expected 150.00, got %s", best.TotalPaid)
	}
}

func TestBestProfession_TieBreaksLexicographically(t *testing.T) {
	now := time.Now()
	rows := []repository.PaidJobRow{
		paidRow("j1", "Wizard", "c1", "Harry Potter", "100.00", now),
		paidRow("j2", "Fighter", "c2", "Mr Robot", "100.00", now),
	}

	svc := application.NewAnalyticsService(snapshotRepo(rows), nil, "")
	best, err := svc.BestProfession(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("BestProfession: %v", err)
	}
	if best.Profession != "Fighter" {
		t.Errorf("expected Fighter on tie, got %s", best.Profession)
	}
}

func TestBestProfession_EmptyRange(t *testing.T) {
	svc := application.NewAnalyticsService(snapshotRepo(nil), nil, "")
	_, err := svc.BestProfession(context.Background(), nil, nil)
	if apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBestProfession_ForwardsDateBounds(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	var gotFrom, gotTo *time.Time
	jobs := &mockJobRepo{
		listPaidBetweenFunc: func(ctx context.Context, f, t *time.Time) ([]repository.PaidJobRow, error) {
			gotFrom, gotTo = f, t
			return []repository.PaidJobRow{paidRow("j1", "Wizard", "c1", "Harry Potter", "10.00", from)}, nil
		},
	}

	svc := application.NewAnalyticsService(jobs, nil, "")
	if _, err := svc.BestProfession(context.Background(), &from, &to); err != nil {
		t.Fatalf("BestProfession: %v", err)
	}
	if gotFrom == nil || !gotFrom.Equal(from) || gotTo == nil || !gotTo.Equal(to) {
		t.Errorf("bounds not forwarded: from=%v to=%v", gotFrom, gotTo)
	}
}

func TestBestClients_RanksByTotalPaid(t *testing.T) {
	now := time.Now()
	rows := []repository.PaidJobRow{
		paidRow("j1", "Wizard", "c1", "Harry Potter", "200.00", now),
		paidRow("j2", "Wizard", "c2", "Mr Robot", "100.00", now),
		paidRow("j3", "Fighter", "c2", "Mr Robot", "200.00", now),
	}

	svc := application.NewAnalyticsService(snapshotRepo(rows), nil, "")
	got, err := svc.BestClients(context.Background(), nil, nil, 1)
	if err != nil {
		t.Fatalf("BestClients: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 client, got %d", len(got))
	}
	if got[0].ClientID != "c2" || !got[0].TotalPaid.Equal(dec("300.00")) {
		t.Errorf("expected c2 with 300.00, got %s with %s", got[0].ClientID, got[0].TotalPaid)
	}
}

func TestBestClients_DefaultLimitIsTwo(t *testing.T) {
	now := time.Now()
	rows := []repository.PaidJobRow{
		paidRow("j1", "Wizard", "c1", "Harry Potter", "300.00", now),
		paidRow("j2", "Wizard", "c2", "Mr Robot", "200.00", now),
		paidRow("j3", "Wizard", "c3", "John Snow", "100.00", now),
	}

	svc := application.NewAnalyticsService(snapshotRepo(rows), nil, "")
	got, err := svc.BestClients(context.Background(), nil, nil, 0)
	if err != nil {
		t.Fatalf("BestClients: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected default limit 2, got %d clients", len(got))
	}
	if got[0].ClientID != "c1" || got[1].ClientID != "c2" {
		t.Errorf("expected [c1 c2], got [%s %s]", got[0].ClientID, got[1].ClientID)
	}
}

func TestBestClients_TieOrdersByClientID(t *testing.T) {
	now := time.Now()
	rows := []repository.PaidJobRow{
		paidRow("j1", "Wizard", "c9", "Mr Robot", "100.00", now),
		paidRow("j2", "Wizard", "c1", "Harry Potter", "100.00", now),
	}

	svc := application.NewAnalyticsService(snapshotRepo(rows), nil, "")
	got, err := svc.BestClients(context.Background(), nil, nil, 2)
	if err != nil {
		t.Fatalf("BestClients: %v", err)
	}
	if got[0].ClientID != "c1" || got[1].ClientID != "c9" {
		t.Errorf("expected ascending id on tie, got [%s %s]", got[0].ClientID, got[1].ClientID)
	}
}

func TestBestClients_NegativeLimit(t *testing.T) {
	svc := application.NewAnalyticsService(snapshotRepo(nil), nil, "")
	_, err := svc.BestClients(context.Background(), nil, nil, -1)
	if apperror.KindOf(err) != apperror.KindInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestBestClients_EmptyRangeIsEmptyList(t *testing.T) {
	svc := application.NewAnalyticsService(snapshotRepo(nil), nil, "")
	got, err := svc.BestClients(context.Background(), nil, nil, 2)
	if err != nil {
		t.Fatalf("BestClients: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestSearchPayments_NoIndexConfigured(t *testing.T) {
	svc := application.NewAnalyticsService(&mockJobRepo{}, nil, "")
	got, err := svc.SearchPayments(context.Background(), "harry", 10)
	if err != nil {
		t.Fatalf("SearchPayments: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result without an index, got %v", got)
	}
}
