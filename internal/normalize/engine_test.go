package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selfhostlit/internal/suite"
)

func descriptor(t *testing.T, compiler, execRoot string) *suite.Config {
	t.Helper()
	cfg, err := suite.Build(suite.Site{CompilerPath: compiler, MyTestExecRoot: execRoot}, t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestNormalizeDescriptor_MasksFields(t *testing.T) {
	cfg := descriptor(t, "/work/selfhost/build/compiler", "/tmp/out")
	masked := NewNormalizationEngine().NormalizeDescriptor(cfg)

	assert.Equal(t, "<source_root>", masked.SourceRoot)
	assert.Equal(t, "<exec_root>", masked.ExecRoot)
	assert.Equal(t, []suite.Substitution{
		{Token: "%compiler", Replacement: "<compiler_path>"},
		{Token: "%gcc", Replacement: "gcc"},
	}, masked.Substitutions)
	assert.Equal(t, []string{"shell"}, masked.AvailableFeatures.List())
	assert.Equal(t, []string{".c"}, masked.Suffixes)
}

func TestNormalizeDescriptor_ShortCompilerPath(t *testing.T) {
	for _, compiler := range []string{"cc", "gcc", "c"} {
		t.Run(compiler, func(t *testing.T) {
			masked := NewNormalizationEngine().NormalizeDescriptor(descriptor(t, compiler, "/tmp/out"))

			assert.Equal(t, []suite.Substitution{
				{Token: "%compiler", Replacement: "<compiler_path>"},
				{Token: "%gcc", Replacement: "gcc"},
			}, masked.Substitutions)
			assert.Equal(t, "SelfhostCompiler", masked.Name)
		})
	}
}

func TestNormalizeDescriptor_ExecRootEqualsSourceRoot(t *testing.T) {
	dir := t.TempDir()
	cfg, err := suite.Build(suite.Site{CompilerPath: "/usr/bin/cc", MyTestExecRoot: dir}, dir)
	require.NoError(t, err)

	masked := NewNormalizationEngine().NormalizeDescriptor(cfg)
	assert.Equal(t, "<source_root>", masked.SourceRoot)
	assert.Equal(t, "<exec_root>", masked.ExecRoot)
}

func TestNormalizeDescriptor_LeavesOriginalUntouched(t *testing.T) {
	cfg := descriptor(t, "/usr/bin/cc", "/tmp/out")
	sourceRoot := cfg.SourceRoot

	NewNormalizationEngine().NormalizeDescriptor(cfg)

	assert.Equal(t, sourceRoot, cfg.SourceRoot)
	assert.Equal(t, "/tmp/out", cfg.ExecRoot)
	assert.Equal(t, "/usr/bin/cc", cfg.Substitutions[0].Replacement)
	assert.Equal(t, "/usr/bin/cc", cfg.Site.CompilerPath)
}

func TestMasks(t *testing.T) {
	assert.Equal(t, []string{"source_root", "exec_root", "compiler_path"}, NewNormalizationEngine().Masks())
}

func TestNormalizeOutput_StripsANSI(t *testing.T) {
	ne := NewNormalizationEngine()

	assert.Equal(t, "SelfhostCompiler", ne.NormalizeOutput("\x1b[1;34mSelfhostCompiler\x1b[0m\n\n"))
	assert.Equal(t, "cc: /usr/bin/cc", ne.NormalizeOutput("cc: /usr/bin/cc\n"))
}
