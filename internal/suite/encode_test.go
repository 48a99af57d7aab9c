package suite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_MarshalJSON(t *testing.T) {
	cfg := newTestConfig(t)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "SelfhostCompiler", got["name"])
	assert.Equal(t, map[string]interface{}{"kind": "sh", "flag": true}, got["test_format"])
	assert.Equal(t, cfg.SourceRoot, got["test_source_root"])
	assert.Equal(t, "/tmp/out", got["test_exec_root"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"token": "%compiler", "replacement": "/usr/bin/cc"},
		map[string]interface{}{"token": "%gcc", "replacement": "gcc"},
	}, got["substitutions"])
	assert.Equal(t, []interface{}{"shell"}, got["available_features"])
	assert.Equal(t, []interface{}{".c"}, got["suffixes"])
}

func TestConfig_EncodeYAML(t *testing.T) {
	cfg := newTestConfig(t)

	data, err := cfg.EncodeYAML()
	require.NoError(t, err)

	var got struct {
		Name          string `yaml:"name"`
		Substitutions []struct {
			Token       string `yaml:"token"`
			Replacement string `yaml:"replacement"`
		} `yaml:"substitutions"`
		Suffixes []string `yaml:"suffixes"`
	}
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, "SelfhostCompiler", got.Name)
	require.Len(t, got.Substitutions, 2)
	assert.Equal(t, "%compiler", got.Substitutions[0].Token)
	assert.Equal(t, "%gcc", got.Substitutions[1].Token)
	assert.Equal(t, []string{".c"}, got.Suffixes)
}

func TestConfig_EncodeUnconfigured(t *testing.T) {
	data, err := json.Marshal(NewConfig(Site{}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"substitutions":[]`)
	assert.Contains(t, string(data), `"kind":"unknown"`)
}
