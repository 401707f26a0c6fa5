package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aurora.conf")
	content := `# Aurora wallet daemon config
rpc.port = 9090
rpc.cors = "chrome-extension://abc, https://aurora.example"
wallet.strict_mnemonic = true
log.level = debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	cfg := Default()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}

	if cfg.RPC.Port != 9090 {
		t.Errorf("rpc port = %d, want 9090", cfg.RPC.Port)
	}
	if len(cfg.RPC.CORSOrigins) != 2 || cfg.RPC.CORSOrigins[0] != "chrome-extension://abc" {
		t.Errorf("cors origins = %v", cfg.RPC.CORSOrigins)
	}
	if !cfg.Wallet.StrictMnemonic {
		t.Error("strict_mnemonic should be enabled")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "missing.conf"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}

func TestApplyFileConfig_UnknownKey(t *testing.T) {
	cfg := Default()
	err := ApplyFileConfig(cfg, map[string]string{"p2p.enabled": "true"})
	if err == nil {
		t.Error("unknown key should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.RPC.Port = 0 }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
