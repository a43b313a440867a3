package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/quantmind-br/repoclone-go/internal/domain"
)

// Backend names accepted by the --backend flag and clone.backend config key
const (
	BackendSystem = "system"
	BackendGoGit  = "go-git"
)

// Cloner clones a repository URL into a destination directory
type Cloner interface {
	Name() string
	Clone(ctx context.Context, url, dest string) error
}

// NewCloner returns the cloner for the given backend name
func NewCloner(backend string, depth int) (Cloner, error) {
	switch backend {
	case "", BackendSystem:
		return &SystemCloner{Depth: depth}, nil
	case BackendGoGit:
		return &GoGitCloner{Depth: depth, Progress: os.Stderr}, nil
	default:
		return nil, errors.New("unknown clone backend: " + backend)
	}
}

// SystemCloner shells out to the git executable
type SystemCloner struct {
	Depth int
}

func (c *SystemCloner) Name() string {
	return BackendSystem
}

// CommandLine returns the exact git invocation Clone runs. Dry-run mode
// prints this verbatim.
func (c *SystemCloner) CommandLine(url, dest string) []string {
	args := []string{"git", "clone"}
	if c.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(c.Depth))
	}
	return append(args, url, dest)
}

func (c *SystemCloner) Clone(ctx context.Context, url, dest string) error {
	argv := c.CommandLine(url, dest)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout

	// git reports progress on stderr; pass it through while keeping a
	// copy for the error message.
	var stderr bytes.Buffer
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)

	// Never prompt for credentials interactively
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return domain.ErrGitNotFound
		}
		exitCode := 0
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return domain.NewCloneError(url, exitCode, strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

// GoGitCloner clones with the embedded go-git implementation. It covers
// hosts without a git binary installed.
type GoGitCloner struct {
	Depth    int
	Progress io.Writer
}

func (c *GoGitCloner) Name() string {
	return BackendGoGit
}

func (c *GoGitCloner) Clone(ctx context.Context, url, dest string) error {
	opts := &git.CloneOptions{
		URL:      url,
		Depth:    c.Depth,
		Progress: c.Progress,
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		opts.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: token,
		}
	}

	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		return domain.NewCloneError(url, 0, "", err)
	}
	return nil
}
