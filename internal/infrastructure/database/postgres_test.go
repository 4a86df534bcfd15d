package database

import "testing"

func TestPostgresDSNFromEnv(t *testing.T) {
	t.Run("explicit dsn", func(t *testing.T) {
		t.Setenv("DB_DSN", " postgres://u:p@db:5432/w ")
		if got := PostgresDSNFromEnv(); got != "postgres://u:p@db:5432/w" {
			t.Fatalf("unexpected dsn: %q", got)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"DB_DSN", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE"} {
			t.Setenv(k, "")
		}
		want := "host=localhost user=postgres password=postgres dbname=wardrobe port=5432 sslmode=disable"
		if got := PostgresDSNFromEnv(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_DSN", "")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_NAME", "catalog")
		t.Setenv("DB_SSLMODE", "require")
		want := "host=db user=postgres password=postgres dbname=catalog port=5432 sslmode=require"
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "")
		t.Setenv("DB_PORT", "")
		if got := PostgresDSNFromEnv(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestDynamoDBOptionsFromEnv(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "")
	if opts := dynamoDBOptionsFromEnv(); opts != nil {
		t.Fatalf("expected no options, got %d", len(opts))
	}

	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	if opts := dynamoDBOptionsFromEnv(); len(opts) != 1 {
		t.Fatalf("expected endpoint option, got %d", len(opts))
	}
}
