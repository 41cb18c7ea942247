package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/countrytable/internal/cli"
	"github.com/rshade/countrytable/internal/config"
)

// setupCLITest isolates config and logging state for one test.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvAPITimeout, "")
	t.Setenv(config.EnvLocale, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

type apiCountry struct {
	Name   string   `json:"name"`
	Region string   `json:"region"`
	Area   *float64 `json:"area,omitempty"`
}

func area(v float64) *float64 { return &v }

// countryServer serves body at /all and counts requests.
func countryServer(t *testing.T, status int, body []apiCountry) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/all" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

// scenarioCountries is the Peru, Lithuania, France fixture.
func scenarioCountries() []apiCountry {
	return []apiCountry{
		{Name: "Peru", Region: "Americas", Area: area(1285216)},
		{Name: "Lithuania", Region: "Europe", Area: area(65300)},
		{Name: "France", Region: "Europe", Area: area(640679)},
	}
}

// executeCmd runs the root command with args and returns stdout and stderr.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeJSON(t *testing.T, data string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(data), v))
}
