package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResources(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	toursPath := filepath.Join(dir, "tours.json")
	copyPath := filepath.Join(dir, "ui-copy.yaml")

	raw, err := json.Marshal(map[string]any{"tours": testTours()})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(toursPath, raw, 0o600))
	require.NoError(t, os.WriteFile(copyPath, []byte("ui: {}\n"), 0o600))

	t.Setenv("RESOURCE_SOURCE", "file")
	t.Setenv("TOURS_PATH", toursPath)
	t.Setenv("COPY_PATH", copyPath)
	t.Setenv("APP_ENV", "test")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(versionInfo{Version: "1.2.3", Commit: "abc"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "travelgo 1.2.3 (abc)\n", out)
}

func TestCatalogCommandJSON(t *testing.T) {
	writeResources(t)

	out, err := runCLI(t, "catalog", "--country", "ge", "--days", "7-8", "--lang", "en", "--json")
	require.NoError(t, err)

	var result struct {
		Count int `json:"count"`
		Total int `json:"total"`
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "georgia-peaks", result.Items[0].ID)
}

func TestCatalogCommandTable(t *testing.T) {
	writeResources(t)

	out, err := runCLI(t, "catalog", "--price", "400", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "lviv-coffee")
	assert.NotContains(t, out, "georgia-peaks")
	assert.Contains(t, out, "1 of 3 tours")
}

func TestSeedRejectsUnknownTarget(t *testing.T) {
	writeResources(t)

	_, err := runCLI(t, "seed", "--target", "ftp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown seed target")
}

func TestInvalidConfigurationFails(t *testing.T) {
	writeResources(t)
	t.Setenv("RESOURCE_SOURCE", "carrier-pigeon")

	_, err := runCLI(t, "catalog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_SOURCE")
}
