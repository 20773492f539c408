package config

import (
	"testing"
	"time"
)

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"production":  "production",
		"PROD":        "production",
		" staging ":   "staging",
		"local":       "local",
		"dev":         "dev",
		"development": "dev",
		"":            "dev",
		"garbage":     "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetSeconds(t *testing.T) {
	t.Setenv("ASSIST_TIMEOUT_SECONDS", "90")
	if got := getSeconds("ASSIST_TIMEOUT_SECONDS", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}

	t.Setenv("ASSIST_TIMEOUT_SECONDS", "not-a-number")
	if got := getSeconds("ASSIST_TIMEOUT_SECONDS", time.Minute); got != time.Minute {
		t.Fatalf("expected default on bad value, got %v", got)
	}

	t.Setenv("ASSIST_TIMEOUT_SECONDS", "-5")
	if got := getSeconds("ASSIST_TIMEOUT_SECONDS", time.Minute); got != time.Minute {
		t.Fatalf("expected default on negative value, got %v", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim("http://a.example, http://b.example ,,")
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("unexpected origins: %v", got)
	}
}

func TestIsProduction(t *testing.T) {
	if (Config{Env: "dev"}).IsProduction() {
		t.Fatal("dev is not production")
	}
	if !(Config{Env: "production"}).IsProduction() {
		t.Fatal("production should report true")
	}
}
