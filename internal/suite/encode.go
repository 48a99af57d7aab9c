package suite

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// document is the encoded form of the descriptor read by the engine.
type document struct {
	Name              string         `json:"name" yaml:"name"`
	TestFormat        formatDocument `json:"test_format" yaml:"test_format"`
	TestSourceRoot    string         `json:"test_source_root" yaml:"test_source_root"`
	TestExecRoot      string         `json:"test_exec_root" yaml:"test_exec_root"`
	Substitutions     []Substitution `json:"substitutions" yaml:"substitutions"`
	AvailableFeatures []string       `json:"available_features" yaml:"available_features"`
	Suffixes          []string       `json:"suffixes" yaml:"suffixes"`
}

type formatDocument struct {
	Kind string `json:"kind" yaml:"kind"`
	Flag bool   `json:"flag" yaml:"flag"`
}

func (c *Config) document() document {
	subs := c.Substitutions
	if subs == nil {
		subs = []Substitution{}
	}
	suffixes := c.Suffixes
	if suffixes == nil {
		suffixes = []string{}
	}
	return document{
		Name:              c.Name,
		TestFormat:        formatDocument{Kind: c.Format.Kind.String(), Flag: c.Format.Flag},
		TestSourceRoot:    c.SourceRoot,
		TestExecRoot:      c.ExecRoot,
		Substitutions:     subs,
		AvailableFeatures: c.AvailableFeatures.List(),
		Suffixes:          suffixes,
	}
}

// MarshalJSON encodes the descriptor with the engine's field names.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.document())
}

// MarshalYAML encodes the descriptor with the engine's field names.
func (c *Config) MarshalYAML() (interface{}, error) {
	return c.document(), nil
}

// EncodeYAML returns the YAML form of the descriptor.
func (c *Config) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
