package golden

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selfhostlit/cmd/suitecfg/shared"
	"selfhostlit/internal/suite"
)

func buildDescriptor(t *testing.T, compiler string) *suite.Config {
	t.Helper()
	desc, err := suite.Build(suite.Site{CompilerPath: compiler, MyTestExecRoot: "/tmp/selfhost-out"}, t.TempDir())
	require.NoError(t, err)
	return desc
}

func TestSnapshot_IsPortable(t *testing.T) {

	first, err := Snapshot(buildDescriptor(t, "/opt/a/compiler"))
	require.NoError(t, err)
	second, err := Snapshot(buildDescriptor(t, "/opt/b/compiler"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "test_source_root: <source_root>")
	assert.Contains(t, first, "test_exec_root: <exec_root>")
	assert.Contains(t, first, "replacement: <compiler_path>")
	assert.Contains(t, first, "replacement: gcc")
}

func TestSnapshot_ShortCompilerPath(t *testing.T) {
	tmp := t.TempDir()
	desc, err := suite.Build(suite.Site{CompilerPath: "cc", MyTestExecRoot: tmp}, tmp)
	require.NoError(t, err)

	snap, err := Snapshot(desc)
	require.NoError(t, err)

	assert.Contains(t, snap, "token: '%gcc'")
	assert.Contains(t, snap, "replacement: gcc")
	assert.Contains(t, snap, "replacement: <compiler_path>")
	assert.Contains(t, snap, "test_source_root: <source_root>")
	assert.Contains(t, snap, "test_exec_root: <exec_root>")
	assert.NotContains(t, snap, "%g<compiler_path>")
	assert.Equal(t, "cc", desc.Substitutions[0].Replacement)
}

func TestRecordAndCheck(t *testing.T) {
	config := shared.NewConfig()
	goldenPath := filepath.Join(t.TempDir(), "golden", "suite.yaml")

	require.NoError(t, NewRecorder(config).Record(buildDescriptor(t, "/usr/bin/cc"), goldenPath))

	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: SelfhostCompiler")

	var out bytes.Buffer
	differ := NewDiffer(config, &out)
	require.NoError(t, differ.Check(buildDescriptor(t, "/usr/local/bin/cc"), goldenPath))
	assert.Empty(t, out.String())
}

func TestCheck_Mismatch(t *testing.T) {
	config := shared.NewConfig()
	goldenPath := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, NewRecorder(config).Record(buildDescriptor(t, "/usr/bin/cc"), goldenPath))

	changed := buildDescriptor(t, "/usr/bin/cc")
	changed.Suffixes = []string{".c", ".h"}

	var out bytes.Buffer
	err := NewDiffer(config, &out).Check(changed, goldenPath)
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, out.String(), "=== Golden: "+goldenPath+" ===")
	assert.Contains(t, out.String(), "+     - .h")
	assert.NotContains(t, out.String(), "name: SelfhostCompiler")
}

func TestCheck_MissingGolden(t *testing.T) {
	var out bytes.Buffer
	err := NewDiffer(shared.NewConfig(), &out).Check(buildDescriptor(t, "/usr/bin/cc"), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestShowDetailedDiff_Verbose(t *testing.T) {
	config := shared.NewConfig()
	config.Verbose = true

	var out bytes.Buffer
	NewDiffer(config, &out).ShowDetailedDiff("a\nb\nc", "a\nx\nc", "inline")

	assert.Equal(t, "=== Golden: inline ===\n  a\n- b\n+ x\n  c\n", out.String())
}
