package domain

// RepoLocation is the parsed identity of a repository and the local
// directory it clones into. It is built once per invocation and never
// mutated afterwards.
type RepoLocation struct {
	// Domain is the host portion of the URL, e.g. "github.com".
	Domain string

	// Author is the owning user or organization. For hosts with nested
	// groups (GitLab subgroups) it holds every intermediate segment
	// joined with "/", e.g. "group/subgroup".
	Author string

	// Name is the repository name with any trailing ".git" stripped.
	Name string

	// Path is the destination directory: base/domain/author/name.
	Path string
}

// Slug returns the domain/author/name form used in log messages.
func (r RepoLocation) Slug() string {
	return r.Domain + "/" + r.Author + "/" + r.Name
}
