package git

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quantmind-br/repoclone-go/internal/domain"
)

// scpLikeRegex matches the scp-style form user@host:path used by SSH
// remotes, e.g. git@github.com:owner/repo.git
var scpLikeRegex = regexp.MustCompile(`^(?:[^@/]+@)?([^:/]+):(.+)$`)

// ParseURL parses a repository URL into its domain, author and repository
// name, and derives the destination directory under basePath.
//
// Supported forms:
//
//	https://github.com/owner/repo.git
//	ssh://git@github.com/owner/repo.git
//	git@github.com:owner/repo.git
//
// Intermediate path segments (GitLab subgroups) are kept as part of the
// author portion, so gitlab.com/group/sub/repo nests under group/sub.
func ParseURL(rawURL, basePath string) (*domain.RepoLocation, error) {
	host, repoPath, err := splitHostPath(rawURL)
	if err != nil {
		return nil, err
	}

	if host == "" {
		return nil, fmt.Errorf("%w: empty host in %q", domain.ErrInvalidURL, rawURL)
	}

	var segments []string
	for _, seg := range strings.Split(repoPath, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: %q needs author and repository path segments", domain.ErrInvalidURL, rawURL)
	}

	name := strings.TrimSuffix(segments[len(segments)-1], ".git")
	author := strings.Join(segments[:len(segments)-1], "/")
	if name == "" {
		return nil, fmt.Errorf("%w: %q has an empty repository name", domain.ErrInvalidURL, rawURL)
	}

	return &domain.RepoLocation{
		Domain: host,
		Author: author,
		Name:   name,
		Path:   filepath.Join(basePath, host, filepath.FromSlash(author), name),
	}, nil
}

// splitHostPath separates the host from the repository path, stripping
// scheme, credentials and port.
func splitHostPath(rawURL string) (string, string, error) {
	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
		}
		switch u.Scheme {
		case "http", "https", "ssh", "git":
		default:
			return "", "", fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidURL, u.Scheme)
		}
		return strings.ToLower(u.Hostname()), strings.Trim(u.Path, "/"), nil
	}

	if m := scpLikeRegex.FindStringSubmatch(rawURL); m != nil {
		return strings.ToLower(m[1]), strings.Trim(m[2], "/"), nil
	}

	return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidURL, rawURL)
}
