package database

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB(url string) {
	if url == "" {
		log.Println("⚠️ DB_URL not set, running without database")
		return
	}

	var err error
	DB, err = sql.Open("postgres", url)
	if err != nil {
		log.Fatalf("❌ Failed to open database connection: %v", err)
	}

	err = DB.Ping()
	if err != nil {
		log.Fatalf("❌ Database unreachable: %v", err)
	}

	log.Println("✓ Connected to PostgreSQL")

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS analysis_results (
			id SERIAL PRIMARY KEY,
			text TEXT,
			verdict TEXT,
			confidence FLOAT,
			result JSONB,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	if err != nil {
		log.Fatalf("❌ Failed to create analysis_results table: %v", err)
	}
}

// SaveAnalysis records a completed analysis. Errors are logged, not returned:
// persistence is best-effort and must never fail the request.
func SaveAnalysis(text, verdict string, confidence float64, resultJSON string) {
	if DB == nil {
		return
	}

	_, err := DB.Exec(
		`INSERT INTO analysis_results (text, verdict, confidence, result) VALUES ($1, $2, $3, $4)`,
		text, verdict, confidence, resultJSON,
	)
	if err != nil {
		log.Printf("[DB] ⚠️ Failed to save analysis: %v", err)
	}
}
