package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RETROBANK_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "RETRO-BANK TERMINAL v2.1 READY...", cfg.UI.Banner)
	require.Equal(t, time.Second, cfg.UI.ClockInterval)
	require.Equal(t, 100*time.Millisecond, cfg.UI.RevealInterval)
	require.Equal(t, "Initial deposit", cfg.Ledger.SeedDescription)

	opening, err := cfg.OpeningBalance()
	require.NoError(t, err)
	require.Equal(t, "1000.00", opening.StringFixed(2))
	seed, err := cfg.SeedAmount()
	require.NoError(t, err)
	require.Equal(t, "500", seed.String())

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[ledger]
opening_balance = "25.50"

[ui]
currency_symbol = "€"
reveal_interval = "10ms"
timezone = "UTC"

[note]
path = "/tmp/note.toml"
state_size = 4096
`)
	t.Setenv("RETROBANK_CONFIG", path)
	t.Setenv("RETROBANK_UI_BANNER", "HELLO")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "25.50", cfg.Ledger.OpeningBalance)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
	require.Equal(t, 10*time.Millisecond, cfg.UI.RevealInterval)
	require.Equal(t, "HELLO", cfg.UI.Banner)
	require.Equal(t, "/tmp/note.toml", cfg.Note.Path)
	require.Equal(t, int64(4096), cfg.Note.StateSize)

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad balance":      "[ledger]\nopening_balance = \"lots\"",
		"negative balance": "[ledger]\nopening_balance = \"-1\"",
		"bad seed":         "[ledger]\nseed_amount = \"x\"",
		"zero clock":       "[ui]\nclock_interval = \"0s\"",
		"negative size":    "[note]\nstate_size = -1",
		"malformed":        "[ui\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("RETROBANK_CONFIG", writeConfig(t, body))
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("RETROBANK_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLocationUnknownZone(t *testing.T) {
	t.Parallel()

	cfg := Config{UI: UIConfig{Timezone: "Mars/Olympus_Mons"}}
	loc, err := cfg.Location()
	require.Error(t, err)
	require.Equal(t, time.Local, loc)
}
