package main

import (
	"os"
	"path/filepath"
	"time"

	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"backend"`
	QR struct {
		RendererBaseURL    string `yaml:"renderer_base_url"`
		RendererSize       int    `yaml:"renderer_size"`
		RefreshLeadSeconds int    `yaml:"refresh_lead_seconds"`
	} `yaml:"qr"`
	Session struct {
		TokenFile string `yaml:"token_file"`
	} `yaml:"session"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func Default(home string) Config {
	cfg := Config{}
	cfg.Backend.BaseURL = "http://localhost:8080"
	cfg.Backend.TimeoutSeconds = 10
	cfg.QR.RendererBaseURL = "https://api.qrserver.com/v1/create-qr-code/"
	cfg.QR.RendererSize = 300
	cfg.QR.RefreshLeadSeconds = 60
	cfg.Session.TokenFile = filepath.Join(home, ".maya", "session.yaml")
	cfg.Log.Level = "info"
	return cfg
}

// LoadConfig reads path over Default(home); keys missing from the file keep
// their defaults.
func LoadConfig(path, home string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errs.Wrapf(err, "read config %s", path)
	}
	cfg := Default(home)
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errs.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func WriteConfig(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func (c Config) BackendConfig() config.BackendConfig {
	return config.BackendConfig{
		BaseURL: c.Backend.BaseURL,
		Timeout: time.Duration(c.Backend.TimeoutSeconds) * time.Second,
	}
}

func (c Config) QRConfig() config.QRConfig {
	return config.QRConfig{
		RendererBaseURL: c.QR.RendererBaseURL,
		RendererSize:    c.QR.RendererSize,
		RefreshLead:     time.Duration(c.QR.RefreshLeadSeconds) * time.Second,
	}
}

// storedSession is what login leaves on disk for the other commands.
type storedSession struct {
	AccessToken string    `yaml:"access_token"`
	ExpiresAt   time.Time `yaml:"expires_at,omitempty"`
	UserID      string    `yaml:"user_id,omitempty"`
	Email       string    `yaml:"email,omitempty"`
}

func loadSession(path string) (storedSession, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return storedSession{}, errs.New("not logged in, run `mayactl login` first")
		}
		return storedSession{}, err
	}
	var s storedSession
	if err := yaml.Unmarshal(b, &s); err != nil {
		return storedSession{}, errs.Wrapf(err, "parse session file %s", path)
	}
	return s, nil
}

func saveSession(path string, s storedSession) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
