package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/projecteru2/netid/netid"
)

// run executes the root command. Flag values persist on the shared command
// tree between calls, so every test passes the flags it depends on.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestMACCommand_Text(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{2}(:[0-9a-f]{2}){5}$`)
	out := run(t, "mac", "--local=true", "--multicast=false", "-n", "5", "-o", "text")
	got := lines(out)
	require.Len(t, got, 5)
	for _, mac := range got {
		require.Regexp(t, re, mac)
		b, err := strconv.ParseUint(mac[:2], 16, 8)
		require.NoError(t, err)
		assert.Equal(t, uint64(0x02), b&0x03)
	}
}

func TestMACCommand_Multicast(t *testing.T) {
	out := run(t, "mac", "--local=false", "--multicast=true", "-n", "3", "-o", "text")
	for _, mac := range lines(out) {
		b, err := strconv.ParseUint(mac[:2], 16, 8)
		require.NoError(t, err)
		assert.Equal(t, uint64(0x01), b&0x03)
	}
}

func TestULACommand_JSON(t *testing.T) {
	out := run(t, "ula", "-n", "4", "-o", "json")
	var r result[string]
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "ula", r.Kind)
	require.Len(t, r.Values, 4)
	for _, v := range r.Values {
		assert.Regexp(t, `^fd[0-9a-f]{2}:[0-9a-f]{4}:[0-9a-f]{4}::/48$`, v)
	}
}

func TestPortCommand_YAML(t *testing.T) {
	out := run(t, "port", "-n", "3", "-o", "yaml")
	var r result[int]
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "port", r.Kind)
	require.Len(t, r.Values, 3)
	for _, p := range r.Values {
		assert.GreaterOrEqual(t, p, netid.PortMin)
		assert.LessOrEqual(t, p, netid.PortMax)
	}
}

func TestUUIDCommand_Name(t *testing.T) {
	out := run(t, "uuid", "--name", "example.com", "-o", "text")
	assert.Equal(t, netid.UUIDv5("example.com"), strings.TrimSpace(out))
	run(t, "uuid", "--name", "", "-o", "text") // reset flag for later tests
}

func TestBasicAuthCommand(t *testing.T) {
	out := run(t, "basicauth", "Aladdin", "open sesame", "-o", "text")
	assert.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", strings.TrimSpace(out))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pool_size: 2\nlog:\n  level: debug\n"), 0o600))
	out := run(t, "ula", "--config", path, "-n", "2", "-o", "text")
	assert.Len(t, lines(out), 2)
	assert.Equal(t, 2, conf.PoolSize)
	run(t, "version", "--config", "") // reset for later tests
}

func TestBadOutput(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"ula", "-o", "xml"})
	assert.Error(t, rootCmd.Execute())
	run(t, "version", "-o", "text")
}

func TestVersionCommand(t *testing.T) {
	out := run(t, "version", "-o", "text")
	assert.True(t, strings.HasPrefix(out, "netid\n"))
}
