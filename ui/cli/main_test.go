// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aerocode/aerocode/internal/config"
	"github.com/aerocode/aerocode/internal/i18n"
	"github.com/spf13/cobra"
)

// isolate keeps tests away from real config files and environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AEROCODE_LANGUAGE", "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		i18n.Init(i18n.DefaultLang)
	})
	return dir
}

// executeCommand runs a fresh root command and returns what it printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRenderDashboard(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "render", "dashboard", "--width", "110")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "Alerta Urgente") || !strings.Contains(out, "Rotor de Turbina X-15") {
		t.Fatalf("dashboard frame missing alert: %q", out)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, "render", "hangar"); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestRenderUsesLanguageFlag(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "render", "projects", "--language", "en")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "Projects in Progress") {
		t.Fatalf("expected English frame: %q", out)
	}
}

func TestRenderUsesConfiguredUser(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	c := config.Config{Language: "pt-BR", User: config.UserConfig{Name: "Ana Souza", Email: "ana@example.com"}}
	if err := config.WriteConfigFile(&c, path); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := executeCommand(t, "--config", path, "render", "profile")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "Ana Souza") || !strings.Contains(out, "ana@example.com") {
		t.Fatalf("profile frame should use configured user: %q", out)
	}
}

func TestMissingConfigFlagFile(t *testing.T) {
	dir := isolate(t)
	_, err := executeCommand(t, "--config", filepath.Join(dir, "nope.yaml"), "projects")
	if err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestProjectsCommand(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "projects")
	if err != nil {
		t.Fatalf("projects failed: %v", err)
	}
	for _, id := range []string{"Aero-X1", "Aero-X2", "Sky-R3", "20/12/2025"} {
		if !strings.Contains(out, id) {
			t.Fatalf("projects output missing %s: %q", id, out)
		}
	}

	out, err = executeCommand(t, "projects", "--status", "testing")
	if err != nil {
		t.Fatalf("projects --status failed: %v", err)
	}
	if !strings.Contains(out, "Sky-R3") || strings.Contains(out, "Aero-X1") {
		t.Fatalf("status filter not applied: %q", out)
	}

	if _, err := executeCommand(t, "projects", "--status", "painting"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestSaveLanguage(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "aerocode.yaml")
	appConfig = config.Config{Language: "pt-BR"}
	configUsed = path
	defer func() { appConfig, configUsed = config.Config{}, "" }()

	if err := saveLanguage("en"); err != nil {
		t.Fatalf("saveLanguage: %v", err)
	}
	got, used, err := config.LoadConfig[config.Config](nil, config.Defaults(), &path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Language != "en" || used != path {
		t.Fatalf("expected language en in %s, got %q from %q", path, got.Language, used)
	}
}

func TestSaveLanguageKeepsOverridesOutOfFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "aerocode.yaml")
	if err := os.WriteFile(path, []byte("language: pt-BR\nuser:\n  name: Ana\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("AEROCODE_USER_NAME", "Temp")
	defer func() { appConfig, configUsed = config.Config{}, "" }()

	var err error
	appConfig, configUsed, err = config.LoadConfig[config.Config](nil, config.Defaults(), &path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if appConfig.User.Name != "Temp" {
		t.Fatalf("expected env override in memory, got %q", appConfig.User.Name)
	}
	if err := saveLanguage("en"); err != nil {
		t.Fatalf("saveLanguage: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.Contains(string(data), "Temp") || !strings.Contains(string(data), "Ana") {
		t.Fatalf("env override leaked into config file: %s", data)
	}
	got, err := config.ReadConfigFile[config.Config](path, config.Defaults())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Language != "en" || got.User.Name != "Ana" {
		t.Fatalf("unexpected stored config: %+v", got)
	}
	if appConfig.Language != "en" {
		t.Fatalf("in-memory language not updated: %q", appConfig.Language)
	}
}

func TestGetConfigPathFromCli_FlagNotSet(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	p, err := getConfigPathFromCli(cmd)
	if err != nil || p != nil {
		t.Fatalf("expected nil path and no error, got %v, %v", p, err)
	}
}
