package config

import (
	"strings"
	"testing"
)

func lookupFrom(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Parallel()

	c, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if c.Env != "development" || c.Port != 8080 || c.SeedSource != SeedStatic {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.HTTPAddr() != ":8080" {
		t.Fatalf("unexpected addr %q", c.HTTPAddr())
	}
	if c.IsProduction() {
		t.Fatalf("expected non-production default")
	}
	want := "host=localhost port=5432 user=postgres password=postgres dbname=eventease sslmode=disable"
	if got := c.DB.DSN(); got != want {
		t.Fatalf("expected dsn %q, got %q", want, got)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Parallel()

	c, err := FromEnv(lookupFrom(map[string]string{
		"APP_ENV":     "production",
		"PORT":        "9090",
		"SEED_SOURCE": "FILE",
		"SEED_FILE":   "/etc/eventease/seed.yaml",
		"DB_HOST":     "db",
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !c.IsProduction() || c.Port != 9090 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.SeedSource != SeedFile || c.SeedFile != "/etc/eventease/seed.yaml" {
		t.Fatalf("unexpected seed settings: %+v", c)
	}
	if c.DB.Host != "db" {
		t.Fatalf("expected db host override, got %q", c.DB.Host)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "non numeric port", env: map[string]string{"PORT": "http"}, wantErr: "PORT must be an integer"},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}, wantErr: "PORT must be a valid port"},
		{name: "unknown env", env: map[string]string{"APP_ENV": "qa"}, wantErr: "APP_ENV must be one of"},
		{name: "unknown seed source", env: map[string]string{"SEED_SOURCE": "redis"}, wantErr: "SEED_SOURCE must be one of"},
		{name: "file without path", env: map[string]string{"SEED_SOURCE": "file"}, wantErr: "SEED_FILE is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(tt.env))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	t.Parallel()

	err := Config{Env: "qa", Port: 0, SeedSource: "nope"}.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"APP_ENV", "PORT", "SEED_SOURCE"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}
