package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl  string `json:"base_url"`
	CacheDb  string `json:"cache_db"`
	Interval int    `json:"interval"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "config.json5"),
		[]byte(`{base_url: "https://nutrition.sa.ucsc.edu", cache_db: "cache.db", interval: 30}`),
		0600,
	)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{cache_db: ":memory:"}`),
		0600,
	)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "https://nutrition.sa.ucsc.edu", cfg.BaseUrl)
	require.Equal(t, ":memory:", cfg.CacheDb)
	require.Equal(t, 30, cfg.Interval)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{base_url: "http://localhost:8080"}`),
		0600,
	)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "http://localhost:8080", cfg.BaseUrl)
}

func TestReadRecursivelyFindsParentConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	err := os.MkdirAll(nested, 0700)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(
		filepath.Join(root, "config.json5"),
		[]byte(`{interval: 15}`),
		0600,
	)
	if err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })
	err = os.Chdir(nested)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadRecursively[testConfig]("config.json5")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 15, cfg.Interval)

	_, err = ReadRecursively[testConfig]("nonexistent.json5")
	require.True(t, os.IsNotExist(err))
}
