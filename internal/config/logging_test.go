package config

import (
	"path/filepath"
	"testing"
)

func TestBuildLogger(t *testing.T) {
	tests := []struct {
		name     string
		config   LoggingConfig
		override string
		wantErr  bool
	}{
		{name: "Defaults", config: LoggingConfig{}},
		{name: "Console debug", config: LoggingConfig{Level: "debug", Format: "console"}},
		{name: "JSON warn", config: LoggingConfig{Level: "warn", Format: "json"}},
		{name: "Warning alias", config: LoggingConfig{Level: "warning"}},
		{name: "Override wins", config: LoggingConfig{Level: "bogus"}, override: "error"},
		{name: "Invalid level", config: LoggingConfig{Level: "loud"}, wantErr: true},
		{name: "Invalid format", config: LoggingConfig{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := tt.config.BuildLogger(tt.override)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error building logger")
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildLogger() returned error: %v", err)
			}
			if logger == nil {
				t.Fatal("expected non-nil logger")
			}
			_ = logger.Sync()
		})
	}
}

func TestBuildLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "analyzer.log")
	logger, err := LoggingConfig{OutputFile: path}.BuildLogger("")
	if err != nil {
		t.Fatalf("BuildLogger() returned error: %v", err)
	}
	logger.Info("test entry")
	_ = logger.Sync()
}
