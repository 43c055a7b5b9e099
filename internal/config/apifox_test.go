package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearApifoxEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvProjectID, "")
	t.Setenv(EnvProjectName, "")
}

func TestLoadApifoxMissing(t *testing.T) {
	clearApifoxEnv(t)
	fsys := afero.NewMemMapFs()

	_, err := LoadApifox(fsys, "/ws/"+ApifoxConfigFile, "/ws/.env")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigMissing), "got %v", err)
}

func TestLoadApifoxInvalidJSON(t *testing.T) {
	clearApifoxEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ws/"+ApifoxConfigFile, []byte("{not json"), 0600))

	_, err := LoadApifox(fsys, "/ws/"+ApifoxConfigFile, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigInvalid), "got %v", err)
}

func TestLoadApifoxEmptyKey(t *testing.T) {
	clearApifoxEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ws/"+ApifoxConfigFile,
		[]byte(`{"apiKey":"","projectId":"42"}`), 0600))

	_, err := LoadApifox(fsys, "/ws/"+ApifoxConfigFile, "")
	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestSaveAndLoadApifox(t *testing.T) {
	clearApifoxEnv(t)
	fsys := afero.NewMemMapFs()
	path := "/ws/" + ApifoxConfigFile

	saved := &ApifoxConfig{APIKey: "secret", ProjectID: "123456", ProjectName: "Shop"}
	require.NoError(t, SaveApifox(fsys, path, saved))

	raw, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"apiKey": "secret"`)
	assert.Contains(t, string(raw), `"projectId": "123456"`)

	loaded, err := LoadApifox(fsys, path, "")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveApifoxRejectsIncomplete(t *testing.T) {
	fsys := afero.NewMemMapFs()
	err := SaveApifox(fsys, "/ws/"+ApifoxConfigFile, &ApifoxConfig{APIKey: "k"})
	assert.ErrorIs(t, err, ErrConfigInvalid)

	exists, _ := afero.Exists(fsys, "/ws/"+ApifoxConfigFile)
	assert.False(t, exists)
}

func TestLoadApifoxDefaultsProjectName(t *testing.T) {
	clearApifoxEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ws/"+ApifoxConfigFile,
		[]byte(`{"apiKey":"k","projectId":"1"}`), 0600))

	cfg, err := LoadApifox(fsys, "/ws/"+ApifoxConfigFile, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultProjectName, cfg.ProjectName)
}

func TestLoadApifoxDotEnvOverrides(t *testing.T) {
	clearApifoxEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ws/"+ApifoxConfigFile,
		[]byte(`{"apiKey":"stored","projectId":"1","projectName":"Stored"}`), 0600))
	require.NoError(t, afero.WriteFile(fsys, "/ws/.env",
		[]byte("APIFOX_API_KEY=from-dotenv\n# comment\nAPIFOX_PROJECT_NAME=\"Dot Env\"\n"), 0600))

	cfg, err := LoadApifox(fsys, "/ws/"+ApifoxConfigFile, "/ws/.env")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.APIKey)
	assert.Equal(t, "1", cfg.ProjectID)
	assert.Equal(t, "Dot Env", cfg.ProjectName)
}

func TestLoadApifoxProcessEnvWins(t *testing.T) {
	clearApifoxEnv(t)
	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvProjectID, "99")
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ws/.env",
		[]byte("APIFOX_API_KEY=from-dotenv\n"), 0600))

	// no stored record, overrides alone are enough
	cfg, err := LoadApifox(fsys, "/ws/"+ApifoxConfigFile, "/ws/.env")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "99", cfg.ProjectID)
}
