package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EnvOnlyWhenFileAbsent(t *testing.T) {
	t.Setenv("ODOO_URL", "https://demo.odoo.example")
	t.Setenv("ODOO_DB", "demo")
	t.Setenv("ODOO_API_KEY", "key-from-env")

	conf, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err != nil {
		t.Fatalf("Load() with absent file returned error: %v", err)
	}

	if conf.Odoo.Url != "https://demo.odoo.example" {
		t.Errorf("Odoo.Url = %q, want value from environment", conf.Odoo.Url)
	}
	if conf.Odoo.Db != "demo" {
		t.Errorf("Odoo.Db = %q, want %q", conf.Odoo.Db, "demo")
	}
	if conf.Env != "local" {
		t.Errorf("Env = %q, want default %q", conf.Env, "local")
	}
	if conf.Odoo.Protocol != "jsonrpc" {
		t.Errorf("Odoo.Protocol = %q, want default %q", conf.Odoo.Protocol, "jsonrpc")
	}
	if conf.Odoo.Timeout != 30 {
		t.Errorf("Odoo.Timeout = %d, want default 30", conf.Odoo.Timeout)
	}
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := []byte("env: prod\nodoo:\n  url: https://file.odoo.example\n  db: filedb\n  username: file-user\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ODOO_USERNAME", "env-user")

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if conf.Env != "prod" {
		t.Errorf("Env = %q, want %q", conf.Env, "prod")
	}
	if conf.Odoo.Url != "https://file.odoo.example" {
		t.Errorf("Odoo.Url = %q, want value from file", conf.Odoo.Url)
	}
	if conf.Odoo.Username != "env-user" {
		t.Errorf("Odoo.Username = %q, want environment override", conf.Odoo.Username)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("env: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed file should return error")
	}
}

func TestSecret(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		password string
		want     string
	}{
		{"api key preferred", "key", "pass", "key"},
		{"password fallback", "", "pass", "pass"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Config{}
			conf.Odoo.ApiKey = tt.apiKey
			conf.Odoo.Password = tt.password
			if got := conf.Secret(); got != tt.want {
				t.Errorf("Secret() = %q, want %q", got, tt.want)
			}
		})
	}
}
