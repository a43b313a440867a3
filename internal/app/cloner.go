package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/repoclone-go/internal/domain"
	"github.com/quantmind-br/repoclone-go/internal/git"
	"github.com/quantmind-br/repoclone-go/internal/utils"
)

// Cloner coordinates a single clone: parse the URL, prepare the
// destination directory, run the clone (or print it in dry-run mode).
type Cloner struct {
	opts   Options
	cloner git.Cloner
	logger *utils.Logger
	stdout io.Writer
}

// Options contains options for creating a Cloner
type Options struct {
	// BasePath is the root the domain/author/repo tree nests under.
	// Empty means the current working directory.
	BasePath string

	// DryRun prints the commands without executing anything.
	DryRun bool

	// Backend selects the clone implementation (git.BackendSystem or
	// git.BackendGoGit). Empty means system.
	Backend string

	// Depth limits clone history; 0 means a full clone.
	Depth int

	// Cloner overrides the backend selection. Tests inject fakes here.
	Cloner git.Cloner

	// Stdout receives user-facing output. Defaults to os.Stdout.
	Stdout io.Writer

	Logger *utils.Logger
}

// New creates a new Cloner with the given options
func New(opts Options) (*Cloner, error) {
	if opts.BasePath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		opts.BasePath = cwd
	}
	opts.BasePath = utils.ExpandPath(opts.BasePath)

	cloner := opts.Cloner
	if cloner == nil {
		var err error
		cloner, err = git.NewCloner(opts.Backend, opts.Depth)
		if err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Cloner{
		opts:   opts,
		cloner: cloner,
		logger: logger.WithComponent("cloner"),
		stdout: stdout,
	}, nil
}

// Run clones the repository at rawURL into the derived destination and
// returns the resolved location. Dry-run prints the commands that would
// have been run and leaves the filesystem untouched.
func (c *Cloner) Run(ctx context.Context, rawURL string) (*domain.RepoLocation, error) {
	loc, err := git.ParseURL(rawURL, c.opts.BasePath)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("url", rawURL).
		Str("destination", loc.Path).
		Str("backend", c.cloner.Name()).
		Msg("Resolved repository location")

	cmdline := (&git.SystemCloner{Depth: c.opts.Depth}).CommandLine(rawURL, loc.Path)

	if c.opts.DryRun {
		c.logger.Debug().
			Str("dir", filepath.Dir(loc.Path)).
			Msg("Dry run, skipping directory creation")
		fmt.Fprintf(c.stdout, "DRY RUN: %s\n", strings.Join(cmdline, " "))
		fmt.Fprintf(c.stdout, "DRY RUN: cd %s\n", loc.Path)
		fmt.Fprintln(c.stdout, "DRY RUN: Repository cloned successfully.")
		return loc, nil
	}

	if err := utils.EnsureDir(filepath.Dir(loc.Path)); err != nil {
		return nil, domain.NewPathError(filepath.Dir(loc.Path), err)
	}

	c.logger.Info().
		Str("repository", loc.Slug()).
		Msg("Cloning repository")

	if err := c.cloner.Clone(ctx, rawURL, loc.Path); err != nil {
		return nil, err
	}

	fmt.Fprintf(c.stdout, "cd %s\n", loc.Path)
	fmt.Fprintln(c.stdout, "Repository cloned successfully.")
	return loc, nil
}
