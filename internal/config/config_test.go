package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.ListenAddr(); got != ":8080" {
		t.Fatalf("expected :8080, got %s", got)
	}
	if cfg.Form.Endpoint != "https://formspree.io/f/mwpgvggg" {
		t.Fatalf("unexpected endpoint %s", cfg.Form.Endpoint)
	}
	if cfg.Form.Timeout != 0 {
		t.Fatalf("expected no form timeout by default, got %s", cfg.Form.Timeout)
	}
	if cfg.Form.MountTTL != 30*time.Minute {
		t.Fatalf("expected 30m mount ttl, got %s", cfg.Form.MountTTL)
	}
	if cfg.Prod() {
		t.Fatalf("default env must not be prod")
	}
}

func TestListenAddrPrefersExplicitAddr(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"PORT": "9000"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.ListenAddr(); got != ":9000" {
		t.Fatalf("expected :9000, got %s", got)
	}
	cfg, err = LoadFrom(map[string]string{"PORT": "9000", "HC_WEB_ADDR": "127.0.0.1:7000"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.ListenAddr(); got != "127.0.0.1:7000" {
		t.Fatalf("expected explicit addr, got %s", got)
	}
}

func TestLoadFromErrors(t *testing.T) {
	_, err := LoadFrom(map[string]string{"HC_WEB_FORM_TIMEOUT": "soon"})
	if err == nil || !strings.Contains(err.Error(), "config: parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
	_, err = LoadFrom(map[string]string{"HC_WEB_ENV": "PROD"})
	if err == nil || !strings.Contains(err.Error(), "HC_WEB_SESSION_SIGNING_KEY") {
		t.Fatalf("expected signing key error, got %v", err)
	}
	cfg, err := LoadFrom(map[string]string{"HC_WEB_ENV": "prod", "HC_WEB_SESSION_SIGNING_KEY": "k"})
	if err != nil || !cfg.Prod() {
		t.Fatalf("expected prod config, got %+v %v", cfg, err)
	}
}
