package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"talent-search-be/internal/constant"
	"talent-search-be/internal/entity"
	"talent-search-be/internal/repository/specification"
	"talent-search-be/internal/repository/unitofwork"
	"talent-search-be/pkg/database"
	"talent-search-be/pkg/embedding"
)

type fixture struct {
	fields       map[string]interface{}
	documentText string
	lifecycle    constant.LifecycleState
}

// Deterministic sample corpus. Embeddings come from the noop provider so a
// reseed always produces identical vectors.
var fixtures = []fixture{
	{
		fields: map[string]interface{}{
			"fullName":        "Amelia Tan",
			"title":           "Senior Backend Engineer",
			"skills":          []interface{}{"go", "postgres", "kubernetes"},
			"yearsExperience": float64(9),
			"location":        "Singapore",
		},
		documentText: "Amelia has led backend teams building high-throughput payment APIs in Go and Postgres. Designed the sharding strategy for a multi-tenant ledger and ran the Kubernetes migration.",
		lifecycle:    constant.LifecycleActive,
	},
	{
		fields: map[string]interface{}{
			"fullName":        "Budi Santoso",
			"title":           "Machine Learning Engineer",
			"skills":          []interface{}{"python", "embeddings", "vector search"},
			"yearsExperience": float64(5),
			"location":        "Jakarta",
		},
		documentText: "Budi built semantic retrieval pipelines with sentence embeddings and approximate nearest neighbour indexes. Shipped a recommender serving layer handling 40k requests per minute.",
		lifecycle:    constant.LifecycleActive,
	},
	{
		fields: map[string]interface{}{
			"fullName":        "Clara Wijaya",
			"title":           "Satellite Systems Engineer",
			"skills":          []interface{}{"rf design", "telemetry", "embedded c"},
			"yearsExperience": float64(12),
			"clearance":       "TS/SCI",
			"location":        "Bandung",
		},
		documentText: "Clara spent a decade on satellite telemetry systems, owning the RF downlink budget and ground-station scheduling software for three LEO constellations.",
		lifecycle:    constant.LifecycleActive,
	},
	{
		fields: map[string]interface{}{
			"fullName":        "Dimas Pratama",
			"title":           "Frontend Engineer",
			"skills":          []interface{}{"typescript", "react"},
			"yearsExperience": float64(3),
			"location":        "Surabaya",
		},
		documentText: "",
		lifecycle:    constant.LifecycleArchive,
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	provider := embedding.NewNoopProvider()

	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CandidateRepository().Count(ctx)
	if err != nil {
		log.Fatalf("Error: Failed to count candidates: %v", err)
	}
	if existing > 0 {
		log.Printf("Skip: %d candidates already present, nothing to seed", existing)
		return
	}

	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: Failed to open transaction: %v", err)
	}
	defer uow.Rollback()

	embeddings := make([]*entity.CandidateEmbedding, 0, len(fixtures))
	for _, f := range fixtures {
		candidate := entity.Candidate{
			Id:             uuid.New(),
			LifecycleState: f.lifecycle,
			CreatedAt:      time.Now(),
		}
		if err := uow.CandidateRepository().Create(ctx, &candidate); err != nil {
			log.Fatalf("Error: Failed to create candidate: %v", err)
		}

		record := entity.DataRecord{
			Id:          uuid.New(),
			CandidateId: candidate.Id,
			Fields:      f.fields,
			CreatedAt:   time.Now(),
		}
		if err := uow.DataRecordRepository().Create(ctx, &record); err != nil {
			log.Fatalf("Error: Failed to create data record: %v", err)
		}
		if name := record.DisplayName(); name != nil {
			log.Printf("Seeding candidate: %s (%s)", *name, f.lifecycle)
		}

		if f.documentText != "" {
			document := entity.CandidateDocument{
				Id:            uuid.New(),
				CandidateId:   candidate.Id,
				ExtractedText: f.documentText,
				CreatedAt:     time.Now(),
			}
			if err := uow.CandidateDocumentRepository().Create(ctx, &document); err != nil {
				log.Fatalf("Error: Failed to create document: %v", err)
			}
		}

		vec, err := provider.Embed(ctx, embeddingInput(f))
		if err != nil {
			log.Fatalf("Error: Failed to embed fixture: %v", err)
		}
		embeddings = append(embeddings, &entity.CandidateEmbedding{
			Id:             uuid.New(),
			CandidateId:    candidate.Id,
			EmbeddingValue: vec,
			Generation:     0,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.CandidateEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
		log.Fatalf("Error: Failed to create embeddings: %v", err)
	}

	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: Failed to commit seed: %v", err)
	}

	active, err := uowFactory.NewUnitOfWork(ctx).CandidateRepository().FindAll(ctx,
		specification.ByLifecycle{State: constant.LifecycleActive})
	if err != nil {
		log.Fatalf("Error: Failed to verify seed: %v", err)
	}

	log.Printf("✅ Success: Seeded %d candidates (%d active)", len(fixtures), len(active))
}

// embeddingInput mirrors what the indexing pipeline would embed: the profile
// fields followed by the document text.
func embeddingInput(f fixture) string {
	parts := make([]string, 0, len(f.fields)+1)
	for _, key := range []string{"fullName", "title", "skills", "location"} {
		if v, ok := f.fields[key]; ok {
			parts = append(parts, stringify(v))
		}
	}
	if f.documentText != "" {
		parts = append(parts, f.documentText)
	}
	return strings.Join(parts, " ")
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}
