package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoclone-go/internal/domain"
)

// recordingCloner records clone invocations instead of running git
type recordingCloner struct {
	calls []cloneCall
	err   error
}

type cloneCall struct {
	url  string
	dest string
}

func (r *recordingCloner) Name() string {
	return "recording"
}

func (r *recordingCloner) Clone(_ context.Context, url, dest string) error {
	r.calls = append(r.calls, cloneCall{url: url, dest: dest})
	return r.err
}

func TestClonerRun(t *testing.T) {
	t.Parallel()

	t.Run("clones into derived destination", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "repos")
		fake := &recordingCloner{}
		var out bytes.Buffer

		cloner, err := New(Options{BasePath: base, Cloner: fake, Stdout: &out})
		require.NoError(t, err)

		loc, err := cloner.Run(context.Background(), "https://github.com/author/project.git")
		require.NoError(t, err)

		want := filepath.Join(base, "github.com", "author", "project")
		assert.Equal(t, want, loc.Path)

		require.Len(t, fake.calls, 1)
		assert.Equal(t, "https://github.com/author/project.git", fake.calls[0].url)
		assert.Equal(t, want, fake.calls[0].dest)

		// Parent directory exists, destination itself is left to git
		info, err := os.Stat(filepath.Dir(want))
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		assert.Contains(t, out.String(), "cd "+want)
		assert.Contains(t, out.String(), "Repository cloned successfully.")
	})

	t.Run("hyphenated names survive the round trip", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "repos")
		fake := &recordingCloner{}

		cloner, err := New(Options{BasePath: base, Cloner: fake, Stdout: &bytes.Buffer{}})
		require.NoError(t, err)

		loc, err := cloner.Run(context.Background(), "https://github.com/libjpeg-turbo/libjpeg-turbo.git")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "github.com", "libjpeg-turbo", "libjpeg-turbo"), loc.Path)
	})

	t.Run("gitlab urls nest under gitlab.com", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "repos")
		fake := &recordingCloner{}

		cloner, err := New(Options{BasePath: base, Cloner: fake, Stdout: &bytes.Buffer{}})
		require.NoError(t, err)

		loc, err := cloner.Run(context.Background(), "https://gitlab.com/emeraldjayde/gitlab-vscode-extension.git")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "gitlab.com", "emeraldjayde", "gitlab-vscode-extension"), loc.Path)
		require.Len(t, fake.calls, 1)
	})

	t.Run("dry run prints commands and touches nothing", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "repos")
		fake := &recordingCloner{}
		var out bytes.Buffer

		cloner, err := New(Options{BasePath: base, DryRun: true, Cloner: fake, Stdout: &out})
		require.NoError(t, err)

		loc, err := cloner.Run(context.Background(), "https://github.com/example-user/example-repo.git")
		require.NoError(t, err)

		want := filepath.Join(base, "github.com", "example-user", "example-repo")
		assert.Equal(t, want, loc.Path)
		assert.Empty(t, fake.calls)

		_, statErr := os.Stat(base)
		assert.True(t, os.IsNotExist(statErr))

		assert.Contains(t, out.String(), "DRY RUN: git clone https://github.com/example-user/example-repo.git "+want)
		assert.Contains(t, out.String(), "DRY RUN: cd "+want)
	})

	t.Run("dry run is repeatable", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "repos")

		runOnce := func() string {
			var out bytes.Buffer
			cloner, err := New(Options{BasePath: base, DryRun: true, Cloner: &recordingCloner{}, Stdout: &out})
			require.NoError(t, err)
			_, err = cloner.Run(context.Background(), "https://github.com/a/b.git")
			require.NoError(t, err)
			return out.String()
		}

		assert.Equal(t, runOnce(), runOnce())
	})

	t.Run("invalid url leaves filesystem untouched", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "repos")
		fake := &recordingCloner{}

		cloner, err := New(Options{BasePath: base, Cloner: fake, Stdout: &bytes.Buffer{}})
		require.NoError(t, err)

		_, err = cloner.Run(context.Background(), "not-a-url")
		assert.ErrorIs(t, err, domain.ErrInvalidURL)
		assert.Empty(t, fake.calls)

		_, statErr := os.Stat(base)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("clone failure propagates", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "repos")
		cause := domain.NewCloneError("https://github.com/a/b.git", 128, "fatal: repository not found", errors.New("exit status 128"))
		fake := &recordingCloner{err: cause}
		var out bytes.Buffer

		cloner, err := New(Options{BasePath: base, Cloner: fake, Stdout: &out})
		require.NoError(t, err)

		_, err = cloner.Run(context.Background(), "https://github.com/a/b.git")
		var cloneErr *domain.CloneError
		require.ErrorAs(t, err, &cloneErr)
		assert.Equal(t, 128, cloneErr.ExitCode)
		assert.NotContains(t, out.String(), "successfully")
	})

	t.Run("path failure surfaces as PathError", func(t *testing.T) {
		base := t.TempDir()
		blocker := filepath.Join(base, "github.com")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		cloner, err := New(Options{BasePath: base, Cloner: &recordingCloner{}, Stdout: &bytes.Buffer{}})
		require.NoError(t, err)

		_, err = cloner.Run(context.Background(), "https://github.com/a/b.git")
		var pathErr *domain.PathError
		assert.ErrorAs(t, err, &pathErr)
	})

	t.Run("empty base path defaults to working directory", func(t *testing.T) {
		fake := &recordingCloner{}
		cloner, err := New(Options{DryRun: true, Cloner: fake, Stdout: &bytes.Buffer{}})
		require.NoError(t, err)

		loc, err := cloner.Run(context.Background(), "https://github.com/a/b.git")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "github.com", "a", "b"), loc.Path)
	})
}
