package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"NEODIAG_LLM_PROVIDER",
		"NEODIAG_OPENAI_API_KEY", "NEODIAG_OPENAI_MODEL", "NEODIAG_OPENAI_BASE_URL",
		"NEODIAG_ANTHROPIC_API_KEY", "NEODIAG_ANTHROPIC_MODEL",
		"NEODIAG_GEMINI_API_KEY", "NEODIAG_GEMINI_MODEL",
		"NEODIAG_OPENROUTER_API_KEY", "NEODIAG_OPENROUTER_MODEL",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "openai" {
		t.Errorf("default provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("default OpenAI model = %q", cfg.OpenAI.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("NEODIAG_LLM_PROVIDER", "anthropic")
	t.Setenv("NEODIAG_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("NEODIAG_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" || cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("anthropic config = %+v", cfg.Anthropic)
	}
	// Unset sections keep their defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "sk-gemini")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("discovery failed with keys present")
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("discovered %q instead of openai", cfg.Provider)
	}
}

func TestDiscoverConfigFallsThrough(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openrouter" {
		t.Fatalf("got %q, %v", cfg.Provider, ok)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discovery succeeded without any key")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"openai with key", func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "k" }, false},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama-local" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
