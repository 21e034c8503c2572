package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardwayz/portal/pkg/config"
	"github.com/wizardwayz/portal/pkg/environment"
	"github.com/wizardwayz/portal/pkg/pillar"
)

func testConfig(t *testing.T, vars map[string]string) appConfig {
	t.Helper()
	var cfg appConfig
	require.NoError(t, config.Parse(&cfg, vars))
	return cfg
}

func testRouter(t *testing.T, vars map[string]string) http.Handler {
	t.Helper()
	h, err := newRouter(testConfig(t, vars), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return h
}

func fetch(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAppConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, nil)

	assert.Equal(t, environment.Development, cfg.Env)
	assert.Equal(t, "Wizardwayz", cfg.Name)
	assert.Equal(t, "/", cfg.Pillars.EntryURL)
	assert.Equal(t, "/", cfg.Pillars.ReturnURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Pillars.RedirectDelay)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.TrustProxy)
}

func TestRouter_Home(t *testing.T) {
	t.Parallel()

	rec := fetch(t, testRouter(t, nil), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	body := rec.Body.String()
	assert.Contains(t, body, "Hover over the golden letters to reveal the pillars")
	assert.Contains(t, body, "<!-- Do you ever get the feeling like you're going in circles? -->")
	assert.Equal(t, 8, strings.Count(body, `class="letter"`))
}

func TestRouter_Scenarios(t *testing.T) {
	t.Parallel()

	h := testRouter(t, map[string]string{"RETURN_URL": "/"})

	t.Run("metaphysics", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/pillars/metaphysics")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>Metaphysics</h1>")
		assert.Contains(t, rec.Body.String(), "M-Pillar")
	})

	t.Run("merchandise goes to the store and back", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/pillars/merchandise")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Redirecting to Merchandise...")
		assert.Contains(t, body, "wyzardwayz-were-house.myshopify.com")
		assert.Contains(t, body, "window.location.href")
	})

	t.Run("atlantis is not found", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/pillars/atlantis")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pillar Not Found")
		assert.Contains(t, rec.Body.String(), `href="/">Return to the Source`)
	})

	t.Run("case variant redirects", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/pillars/Myth")
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/pillars/myth", rec.Header().Get("Location"))
	})

	t.Run("qr code", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/pillars/myth/qr.png")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

		rec = fetch(t, h, "/pillars/atlantis/qr.png")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/healthz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("static", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/static/site.css")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		t.Parallel()
		rec := fetch(t, h, "/nowhere/at/all")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pillar Not Found")
	})
}

func TestRouter_StoreURLOverride(t *testing.T) {
	t.Parallel()

	h := testRouter(t, map[string]string{"MERCHANDISE_STORE_URL": "https://store.example"})
	body := fetch(t, h, "/pillars/merchandise").Body.String()

	assert.Contains(t, body, "store.example")
	assert.NotContains(t, body, "myshopify")
}

func TestLoadRegistry_CatalogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("m: [Myth, Merch]\ne: [Evolve]\n"), 0o600))

	reg, err := loadRegistry(appConfig{Catalog: path, StoreURL: "https://store.example"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Myth", "Merch"}, reg.AllPillars(pillar.CategoryM))

	_, ok := reg.Outbound("Merch")
	assert.False(t, ok)

	_, err = loadRegistry(appConfig{Catalog: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, pillar.ErrCatalogRead)
}

func TestPrintPillars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printPillars(&buf, appConfig{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 27)
	assert.Equal(t, []string{"CATEGORY", "NAME", "SLUG", "OUTBOUND"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"M", "Memetics", "memetics"}, strings.Fields(lines[1]))
	assert.Contains(t, buf.String(), "https://wyzardwayz-were-house.myshopify.com")
}

func TestRootCmd_Pillars(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"pillars"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Metaphysics")

	cmd = newRootCmd()
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"pillars", "extra"})
	assert.Error(t, cmd.Execute())
}
