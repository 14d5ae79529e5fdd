package cmd

import (
	"os"
	"testing"

	"github.com/todolabs/rocketd/internal/config"
)

// TestConfigCmdUsage verifies the config command has correct configuration
func TestConfigCmdUsage(t *testing.T) {
	if configCmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got '%s'", configCmd.Use)
	}
	if configCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

// TestConfigShowCmd tests the config show subcommand
func TestConfigShowCmd(t *testing.T) {
	setupTestDir(t)

	// Without rocketd.yaml - should fall back to defaults
	err := configShowCmd.RunE(nil, nil)
	if err != nil {
		t.Fatalf("configShowCmd.RunE() error = %v", err)
	}

	// With rocketd.yaml
	cfg := config.Default()
	cfg.Server.Port = 9000
	if err := cfg.Save(config.FileName); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	err = configShowCmd.RunE(nil, nil)
	if err != nil {
		t.Fatalf("configShowCmd.RunE() with %s error = %v", config.FileName, err)
	}
}

// TestConfigValidateCmd tests the config validate subcommand
func TestConfigValidateCmd(t *testing.T) {
	setupTestDir(t)

	// Missing file is fine, defaults apply
	if err := configValidateCmd.RunE(nil, nil); err != nil {
		t.Errorf("configValidateCmd.RunE() without file error = %v", err)
	}

	// Valid file passes
	cfg := config.Default()
	if err := cfg.Save(config.FileName); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if err := configValidateCmd.RunE(nil, nil); err != nil {
		t.Errorf("configValidateCmd.RunE() error = %v", err)
	}
}

// TestConfigValidateCmd_InvalidYAML tests with a broken config file
func TestConfigValidateCmd_InvalidYAML(t *testing.T) {
	setupTestDir(t)

	os.WriteFile(config.FileName, []byte("invalid: {{{yaml"), 0644)

	err := configValidateCmd.RunE(nil, nil)
	if err == nil {
		t.Error("configValidateCmd.RunE() should error with invalid YAML")
	}
}

// TestConfigValidateCmd_InvalidValues tests with well-formed but invalid config
func TestConfigValidateCmd_InvalidValues(t *testing.T) {
	setupTestDir(t)

	cfg := config.Default()
	cfg.Server.Port = 0
	if err := cfg.Save(config.FileName); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	err := configValidateCmd.RunE(nil, nil)
	if err == nil {
		t.Error("configValidateCmd.RunE() should error when values are out of range")
	}
}

// TestConfigPathCmd tests the config path subcommand
func TestConfigPathCmd(t *testing.T) {
	// This command should not panic or error
	configPathCmd.Run(nil, nil)
}

// TestConfigSubcommands verifies all subcommands exist
func TestConfigSubcommands(t *testing.T) {
	subcommands := []string{"show", "validate", "path"}

	for _, name := range subcommands {
		found := false
		for _, cmd := range configCmd.Commands() {
			if cmd.Use == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("configCmd missing subcommand: %s", name)
		}
	}
}
