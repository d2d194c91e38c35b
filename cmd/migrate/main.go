package main

import (
	"log"
	"os"

	"talent-search-be/internal/model"
	"talent-search-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do perfectly)
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		// Extensions
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,

		// Enums (Idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'candidate_lifecycle_state') THEN CREATE TYPE candidate_lifecycle_state AS ENUM ('ACTIVE', 'ARCHIVE'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Candidate{},
		&model.DataRecord{},
		&model.CandidateDocument{},
		&model.CandidateEmbedding{},
		&model.CandidateSearchDocument{},
		&model.SearchSession{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Search Document Maintenance
	log.Println("Step 3: Creating search document trigger...")

	postMigrationSQL := []string{
		// Keep the lexical index in sync with the field maps. The tsvector is
		// rebuilt from the raw record whenever it changes.
		`CREATE OR REPLACE FUNCTION refresh_candidate_search_document() RETURNS trigger LANGUAGE plpgsql AS $$
		BEGIN
		  INSERT INTO candidate_search_documents (candidate_id, content, fts)
		  VALUES (NEW.candidate_id, COALESCE(NEW.fields::text, ''), to_tsvector('english', COALESCE(NEW.fields::text, '')))
		  ON CONFLICT (candidate_id)
		  DO UPDATE SET content = COALESCE(NEW.fields::text, ''),
		                fts = to_tsvector('english', COALESCE(NEW.fields::text, ''));
		  RETURN NEW;
		END; $$;`,

		`DROP TRIGGER IF EXISTS trg_refresh_candidate_search_document ON data_records;`,
		`CREATE TRIGGER trg_refresh_candidate_search_document
		 AFTER INSERT OR UPDATE OF fields ON data_records
		 FOR EACH ROW EXECUTE FUNCTION refresh_candidate_search_document();`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
