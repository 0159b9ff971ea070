package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldCwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
	require.NoError(t, os.Chdir(dir))
}

// repoRoot creates a temp dir marked as a repository root.
func repoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	return root
}

func samePath(t *testing.T, want, got string) {
	t.Helper()
	// macOS /var -> /private/var
	expected, _ := filepath.EvalSymlinks(want)
	actual, _ := filepath.EvalSymlinks(got)
	assert.Equal(t, expected, actual)
}

func TestFindConfigFile_ExplicitPath(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("policy_file: p.yaml"), 0o644))

	path, err := findConfigFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, tmpFile, path)
}

func TestFindConfigFile_ExplicitPathNotFound(t *testing.T) {
	_, err := findConfigFile("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestFindConfigFile_AutoDiscovery(t *testing.T) {
	root := repoRoot(t)
	configPath := filepath.Join(root, "rowguard.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("policy_file: p.yaml"), 0o644))

	nested := filepath.Join(root, "deep", "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	path, err := findConfigFile("")
	require.NoError(t, err)
	samePath(t, configPath, path)
}

func TestFindConfigFile_PrefersYamlOverYml(t *testing.T) {
	root := repoRoot(t)
	yamlPath := filepath.Join(root, "rowguard.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("policy_file: yaml.yaml"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "rowguard.yml"), []byte("policy_file: yml.yaml"), 0o644))
	chdir(t, root)

	path, err := findConfigFile("")
	require.NoError(t, err)
	samePath(t, yamlPath, path)
}

func TestFindConfigFile_StopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "rowguard.yaml"), []byte("policy_file: above.yaml"), 0o644))

	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".git"), 0o755))
	chdir(t, project)

	path, err := findConfigFile("")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestFindConfigFile_NoConfigReturnsEmpty(t *testing.T) {
	chdir(t, repoRoot(t))

	path, err := findConfigFile("")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, repoRoot(t))

	cfg, configPath, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, configPath)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "policies.yaml", cfg.PolicyFile)
	assert.False(t, cfg.Render.Indexes)
	assert.Equal(t, "info", cfg.Log.Level)

	d, err := cfg.DebounceInterval()
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, d)
}

func TestLoadConfig_FromFile(t *testing.T) {
	root := repoRoot(t)
	configPath := filepath.Join(root, "rowguard.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
policy_file: db/policies.yaml
render:
  indexes: true
  output: out/policies.sql
log:
  format: json
`), 0o644))
	chdir(t, root)

	cfg, foundPath, err := LoadConfig("")
	require.NoError(t, err)
	samePath(t, configPath, foundPath)

	assert.Equal(t, "db/policies.yaml", cfg.PolicyFile)
	assert.True(t, cfg.Render.Indexes)
	assert.Equal(t, "out/policies.sql", cfg.Render.Output)
	assert.Equal(t, "json", cfg.Log.Format)

	// Defaults still apply for unset values
	assert.False(t, cfg.Render.Replace)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "200ms", cfg.Watch.Debounce)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	root := repoRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "rowguard.yaml"), []byte("policy_file: file.yaml"), 0o644))
	chdir(t, root)

	t.Setenv("ROWGUARD_POLICY_FILE", "env.yaml")

	cfg, _, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.PolicyFile)
}

func TestLoadConfig_NestedEnvVars(t *testing.T) {
	chdir(t, repoRoot(t))

	t.Setenv("ROWGUARD_RENDER_INDEXES", "true")
	t.Setenv("ROWGUARD_WATCH_DEBOUNCE", "1s")
	t.Setenv("ROWGUARD_LOG_LEVEL", "debug")

	cfg, _, err := LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.Render.Indexes)
	assert.Equal(t, "debug", cfg.Log.Level)
	d, err := cfg.DebounceInterval()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestLoadConfig_InvalidDebounce(t *testing.T) {
	chdir(t, repoRoot(t))
	t.Setenv("ROWGUARD_WATCH_DEBOUNCE", "soon")

	_, _, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch.debounce")
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	chdir(t, repoRoot(t))
	path := filepath.Join(t.TempDir(), "elsewhere.yml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  replace: true\n"), 0o644))

	cfg, found, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
	assert.True(t, cfg.Render.Replace)
}

func TestDebounceInterval(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{value: "", want: 0},
		{value: "50ms", want: 50 * time.Millisecond},
		{value: "-1s", wantErr: true},
		{value: "fast", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := &Config{Watch: WatchConfig{Debounce: tt.value}}
			got, err := cfg.DebounceInterval()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvedPolicyFile(t *testing.T) {
	cfg := &Config{PolicyFile: "policies.yaml"}
	assert.Equal(t, "policies.yaml", cfg.ResolvedPolicyFile(""))
	assert.Equal(t, "other.yaml", cfg.ResolvedPolicyFile("other.yaml"))
}
