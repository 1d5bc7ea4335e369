package envvars

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProjectID     = "GCP_PROJECT_ID"
	StorageBucket = "STORAGE_BUCKET"
	Environment   = "ENVIRONMENT"
	Port          = "PORT"
)

const (
	ProductionEnv = "production"
	DevEnv        = "dev"
)

type Env struct {
	ProjectID     string
	StorageBucket string
	Environment   string
	Port          string
}

func GetEvn() Env {
	// Missing .env is fine, everything can come from the real environment.
	_ = godotenv.Load()

	projectID, ok := os.LookupEnv(ProjectID)
	if !ok {
		log.Fatalf("%s required", ProjectID)
	}
	bucket, ok := os.LookupEnv(StorageBucket)
	if !ok {
		log.Fatalf("%s required", StorageBucket)
	}
	environment, ok := os.LookupEnv(Environment)
	if !ok {
		environment = DevEnv
	}
	port, ok := os.LookupEnv(Port)
	if !ok {
		port = "8080"
	}
	return Env{
		ProjectID:     projectID,
		StorageBucket: bucket,
		Environment:   environment,
		Port:          port,
	}
}

func IsProd(e Env) bool {
	return e.Environment == ProductionEnv
}

func IsDev(e Env) bool {
	return e.Environment == DevEnv
}
