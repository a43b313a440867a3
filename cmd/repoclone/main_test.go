package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckGit(t *testing.T) {
	orig := execLookPath
	defer func() { execLookPath = orig }()

	t.Run("found", func(t *testing.T) {
		execLookPath = func(name string) (string, error) {
			assert.Equal(t, "git", name)
			return "/usr/bin/git", nil
		}
		assert.Equal(t, "/usr/bin/git", checkGit())
	})

	t.Run("missing", func(t *testing.T) {
		execLookPath = func(string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		}
		assert.Empty(t, checkGit())
	})
}

func TestRootCmdMetadata(t *testing.T) {
	assert.Equal(t, "repoclone <git-url>", rootCmd.Use)

	// Required flags are registered
	assert.NotNil(t, rootCmd.Flags().Lookup("base-path"))
	assert.NotNil(t, rootCmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, rootCmd.Flags().Lookup("backend"))
	assert.NotNil(t, rootCmd.Flags().Lookup("depth"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))

	// Exactly one positional argument
	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"https://github.com/a/b.git"}))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"a", "b"}))
}
