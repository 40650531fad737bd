package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/users/internal/store"
	"github.com/idilsaglam/users/internal/tui"
	"github.com/idilsaglam/users/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme("classic") })
	var out, errOut bytes.Buffer
	code = Execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestAdd_JSON(t *testing.T) {
	code, out, _ := run(t, "add", "Doc Brown", "", "--json")

	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"users":[{"name":"Marty McFly"},{"name":"Doc Brown"},{"name":""}]}`, out)
}

func TestAdd_Panel(t *testing.T) {
	code, out, _ := run(t, "--theme", "mono", "add", "Doc Brown")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Users  - Total 2")
	assert.Contains(t, out, " 1. Marty McFly")
	assert.Contains(t, out, " 2. Doc Brown")
	assert.Contains(t, out, "ok added 1")
}

func TestAdd_NoNamesListsSeed(t *testing.T) {
	code, out, _ := run(t, "--theme", "mono", "add")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Marty McFly")
	assert.NotContains(t, out, "added")
}

func TestAdd_Out(t *testing.T) {
	p := filepath.Join(t.TempDir(), "snap.json")

	code, _, _ := run(t, "add", "Lorraine", "--out", p)
	require.Equal(t, ExitOK, code)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[{"name":"Marty McFly"},{"name":"Lorraine"}]}`, string(b))
}

func TestAdd_DebugLogsMetrics(t *testing.T) {
	code, _, errOut := run(t, "--log-level", "debug", "add", "Doc Brown", "--json")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, errOut, "command applied")
	assert.Contains(t, errOut, "name=users_commands_total value=1")
	assert.Contains(t, errOut, "name=users_state_size value=2")
}

func TestConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(p, []byte("theme: mono\nchar_limit: 3\n"), 0o644))

	code, out, _ := run(t, "--config", p, "add", "Lorraine")

	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Users  - Total 2")
	assert.Contains(t, out, " 2. Lorraine")
}

func TestAdd_NamesRoundTripUnchanged(t *testing.T) {
	long := strings.Repeat("a", 250)

	code, out, errOut := run(t, "add", long, "tab\there", "--json")
	require.Equal(t, ExitOK, code, errOut)

	var snap struct {
		Users []struct {
			Name string `json:"name"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Len(t, snap.Users, 3)
	assert.Equal(t, long, snap.Users[1].Name)
	assert.Equal(t, "tab\there", snap.Users[2].Name)
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"--log-level", "chatty", "add"},
		{"--no-such-flag"},
		{"bogus"},
		{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "add"},
	}
	for _, args := range cases {
		code, _, errOut := run(t, args...)
		assert.Equal(t, ExitUsage, code, args)
		assert.Contains(t, errOut, "Usage:", args)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")

	require.Equal(t, ExitOK, code)
	assert.Equal(t, "users version dev\n", out)
}

func TestRoot_RunsPageInScope(t *testing.T) {
	orig := runPage
	t.Cleanup(func() { runPage = orig })

	var got tui.Options
	runPage = func(ctx context.Context, c *store.Container, opts tui.Options) error {
		got = opts
		dispatch, err := store.UseDispatch(ctx)
		require.NoError(t, err)
		return dispatch(store.Append{})
	}

	code, _, errOut := run(t)

	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, 200, got.CharLimit)
	assert.True(t, got.AltScreen)
}
