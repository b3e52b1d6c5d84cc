package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Roundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := SaveProfile("Staging Panel", "https://staging.example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "staging-panel", p.Name)
	assert.Equal(t, "https://staging.example.com/api", p.APIURL)

	loaded, err := LoadProfile("staging-panel")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	profiles, err := ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "staging-panel", profiles[0].Name)
}

func TestProfile_ActiveSelection(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := SaveProfile("prod", "https://panel.example.com/api")
	require.NoError(t, err)

	require.NoError(t, SetActive("prod"))

	active, err := GetActive()
	require.NoError(t, err)
	assert.Equal(t, "prod", active)

	require.NoError(t, DeleteProfile("prod"))

	active, err = GetActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSetActive_UnknownProfile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := SetActive("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveProfile_Invalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := SaveProfile("prod", "")
	require.Error(t, err)

	_, err = SaveProfile("---", "https://panel.example.com/api")
	require.Error(t, err)
}
