package main

import (
	"bytes"
	"context"
	"errors"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nx-sdk/nxsdk-go/internal/profile"
	"github.com/nx-sdk/nxsdk-go/internal/render"
	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	_, err := executeApp(newApp(&stdout, &stderr), args...)
	return stdout.String(), stderr.String(), err
}

func executeApp(a *app, args ...string) (*app, error) {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	return a, cmd.Execute()
}

// staticLoader serves a profile already held in memory.
type staticLoader struct {
	p   *profile.Profile
	err error
}

func (l staticLoader) Load(context.Context) (*profile.Profile, error) { return l.p, l.err }

func TestList_AllGroups(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus 3 record, 4 event, 2 state, 2 encap, 2 family and 4 priority members.
	assert.Len(t, lines, 1+3+4+2+2+2+4)
	assert.Contains(t, out, "R_JSON")
	assert.Contains(t, out, "NO_PRIO")
	assert.NotContains(t, out, "MAX_TYPE")
}

func TestList_NamedGroupAsJSON(t *testing.T) {
	out, _, err := execute(t, "list", "--format", "json", "encap")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "VXLAN", got[1]["name"])
}

func TestList_UnknownGroup(t *testing.T) {
	_, _, err := execute(t, "list", "vlan")
	require.Error(t, err)
	var gerr *nxtypes.GroupError
	assert.ErrorAs(t, err, &gerr)
}

func TestLookup(t *testing.T) {
	out, _, err := execute(t, "lookup", "-o", "xml", "af", "start")
	require.NoError(t, err)
	assert.Contains(t, out, `sdk_name="AF_IPV4"`)
	assert.Contains(t, out, `value="0"`)
}

func TestLookup_OutOfRange(t *testing.T) {
	_, stderr, err := execute(t, "lookup", "priority", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, nxtypes.ErrOutOfRange)
	assert.Contains(t, stderr, "lookup failed")
}

func TestLookup_FormatFromEnv(t *testing.T) {
	t.Setenv("NXTYPES_FORMAT", "json")

	out, _, err := execute(t, "lookup", "event", "3")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, `"UPDATE"`)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "list", "--format", "R_MAX_TYPE")
	require.Error(t, err)
	assert.ErrorIs(t, err, nxtypes.ErrUnknownName)
	assert.NotErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
name: intf-monitor
priority: med
subscriptions:
  - events: [update]
    state: down
`), 0o600))

	out, stderr, err := execute(t, "check", good)
	require.NoError(t, err)
	assert.Equal(t, "intf-monitor: valid (priority MEDIUM, record type TEXT, 1 subscriptions)\n", out)
	assert.Contains(t, stderr, `"profile":"intf-monitor"`)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: x\npriority: realtime\n"), 0o600))

	_, stderr, err = execute(t, "check", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
	assert.Contains(t, stderr, "profile rejected")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nxtypes version develop\n", out)
}

func TestVersion_IgnoresBrokenConfig(t *testing.T) {
	t.Setenv("NXTYPES_FORMAT", "yaml")

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nxtypes version develop\n", out)

	_, _, err = execute(t, "list")
	assert.ErrorIs(t, err, nxtypes.ErrUnknownName)
}

func TestCheck_CountsLoggedErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.profiles = func(path string) profile.Loader {
		return staticLoader{err: errors.New("profile unreadable")}
	}

	_, err := executeApp(a, "check", "mem.yaml")
	require.EqualError(t, err, "profile unreadable")
	assert.Equal(t, int64(1), a.errorCount())
	assert.Contains(t, stderr.String(), `"path":"mem.yaml"`)
}

func TestCheck_ProfileFromLoader(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.profiles = func(path string) profile.Loader {
		return staticLoader{p: &profile.Profile{
			Name:       "vxlan-watch",
			Priority:   nxtypes.PriorityLow,
			RecordType: nxtypes.RecordTypeXML,
		}}
	}

	_, err := executeApp(a, "check", "ignored.yaml")
	require.NoError(t, err)
	assert.Equal(t, "vxlan-watch: valid (priority LOW, record type XML, 0 subscriptions)\n", stdout.String())
	assert.Zero(t, a.errorCount())
}
