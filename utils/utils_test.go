package utils

import (
	"bytes"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestIndexOfString(t *testing.T) {
	cities := []string{"chicago", "new york city", "washington"}

	testCases := []struct {
		name     string
		target   string
		expected int
	}{
		{name: "exact match", target: "chicago", expected: 0},
		{name: "mixed case", target: "New York City", expected: 1},
		{name: "surrounding spaces", target: "  WASHINGTON \n", expected: 2},
		{name: "not found", target: "boston", expected: -1},
		{name: "empty", target: "", expected: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, IndexOfString(tc.target, cities))
			require.Equal(t, tc.expected != -1, ContainsString(tc.target, cities))
		})
	}
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 5\n"), 0600))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "page_size: 5\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "error opening config file")
}

func TestInitLogger(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var buffer bytes.Buffer
	require.NoError(t, InitLogger("debug", &buffer))
	require.Equal(t, log.DebugLevel, log.GetLevel())

	log.Debug("hello")
	require.Contains(t, buffer.String(), "hello")

	require.Error(t, InitLogger("not-a-level", &buffer))
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "New York City", DisplayName("new york city"))
	require.Equal(t, "March", DisplayName("march"))
	require.Equal(t, "Wednesday", DisplayName("WEDNESDAY"))
}
