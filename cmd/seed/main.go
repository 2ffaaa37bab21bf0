package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/gigpayhq/gigpay/config"
	"github.com/gigpayhq/gigpay/pkg/helpers"
)

type profileSeed struct {
	firstName  string
	lastName   string
	kind       string
	profession string
	balance    string
}

var profileSeeds = []profileSeed{
	{"Harry", "Potter", "client", "", "1150.00"},
	{"Mr", "Robot", "client", "", "231.11"},
	{"John", "Snow", "client", "", "451.30"},
	{"Ash", "Ketchum", "client", "", "1.30"},
	{"John", "Lenon", "contractor", "Musician", "64.00"},
	{"Linus", "Torvalds", "contractor", "Programmer", "1214.00"},
	{"Alan", "Turing", "contractor", "Programmer", "22.00"},
	{"Aragorn", "Elessar", "contractor", "Fighter", "314.00"},
}

// contracts: client index, contractor index (into profileSeeds), status
var contractSeeds = []struct {
	client, contractor int
	status             string
}{
	{0, 4, "terminated"},
	{0, 5, "in_progress"},
	{1, 5, "in_progress"},
	{1, 6, "in_progress"},
	{2, 7, "new"},
	{3, 6, "in_progress"},
}

// jobs: contract index, description, price, paid
var jobSeeds = []struct {
	contract    int
	description string
	price       string
	paid        bool
}{
	{0, "studio session", "200.00", true},
	{1, "kernel patch review", "201.00", false},
	{1, "build pipeline fix", "202.00", false},
	{2, "database tuning", "121.00", false},
	{3, "code audit", "79.00", false},
	{4, "sparring lessons", "21.00", false},
	{5, "security review", "120.00", true},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	ids := make([]string, len(profileSeeds))
	for i, p := range profileSeeds {
		var profession any
		if p.profession != "" {
			profession = p.profession
		}
		err := db.QueryRow(`
			INSERT INTO profiles (type, first_name, last_name, profession, balance)
			VALUES ($1, $2, $3, $4, $5::numeric)
			RETURNING id
		`, p.kind, p.firstName, p.lastName, profession, p.balance).Scan(&ids[i])
		if err != nil {
			log.Fatalf("failed to seed profile %s %s: %v", p.firstName, p.lastName, err)
		}
		fmt.Printf("profile %-8s %s %s id=%s balance=%s\n", p.kind, p.firstName, p.lastName, ids[i], p.balance)
	}

	contractIDs := make([]string, len(contractSeeds))
	for i, cs := range contractSeeds {
		err := db.QueryRow(`
			INSERT INTO contracts (client_id, contractor_id, terms, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, ids[cs.client], ids[cs.contractor], "standard engagement terms", cs.status).Scan(&contractIDs[i])
		if err != nil {
			log.Fatalf("failed to seed contract: %v", err)
		}
	}
	fmt.Printf("seeded %d contracts\n", len(contractIDs))

	for _, js := range jobSeeds {
		paidAt := sql.NullString{}
		if js.paid {
			paidAt = sql.NullString{String: "2026-08-15T10:00:00Z", Valid: true}
		}
		if _, err := db.Exec(`
			INSERT INTO jobs (contract_id, description, price, paid, payment_date)
			VALUES ($1, $2, $3::numeric, $4, $5::timestamptz)
		`, contractIDs[js.contract], js.description, js.price, js.paid, paidAt); err != nil {
			log.Fatalf("failed to seed job: %v", err)
		}
	}
	fmt.Printf("seeded %d jobs\n", len(jobSeeds))

	// Print a bcrypt hash for ADMIN_PASSWORD_HASH so local setups can log in.
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	hash, err := helpers.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	fmt.Printf("admin login: email=%s password=%s\n", cfg.AdminEmail, adminPassword)
	fmt.Printf("export ADMIN_PASSWORD_HASH='%s'\n", hash)
}
