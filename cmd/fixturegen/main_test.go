package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tailbits/fixture/internal/config"
	"gotest.tools/v3/assert"
)

func TestRunPrecedence(t *testing.T) {
	root := t.TempDir()
	yamlDir := filepath.Join(root, "yaml")
	envDir := filepath.Join(root, "env")
	flagDir := filepath.Join(root, "flag")

	cfgPath := filepath.Join(root, "fixturegen.yaml")
	assert.NilError(t, os.WriteFile(cfgPath, []byte("out_dir: "+yamlDir+"\nlog_level: error\n"), 0o600))

	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{name: "yaml only", want: yamlDir},
		{name: "env over yaml", env: envDir, want: envDir},
		{name: "flag over env", env: envDir, args: []string{"-out", flagDir}, want: flagDir},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(config.EnvOutDir, tc.env)
			t.Setenv(config.EnvLogLevel, "")
			t.Setenv(config.EnvLint, "")

			args := append([]string{"-config", cfgPath, "-env", ""}, tc.args...)
			assert.NilError(t, run(args))

			_, err := os.Stat(filepath.Join(tc.want, "openapi.json"))
			assert.NilError(t, err)
		})
	}

	_, err := os.Stat(filepath.Join(yamlDir, "user-impl.schema.json"))
	assert.NilError(t, err)
}

func TestRunLintFlag(t *testing.T) {
	t.Setenv(config.EnvLint, "false")
	t.Setenv(config.EnvLogLevel, "")
	out := t.TempDir()

	assert.NilError(t, run([]string{"-env", "", "-out", out, "-lint", "-log-level", "warn"}))

	_, err := os.Stat(filepath.Join(out, "user-role.schema.json"))
	assert.NilError(t, err)
}

func TestRunInvalidFlag(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	assert.ErrorContains(t, run([]string{"-env", "", "-log-level", "loud"}), "log_level")
	assert.NilError(t, run([]string{"-h"}))
}
