// Package github loads templates from a GitHub repository through the
// contents API. It registers itself under the loader name "github";
// spec arguments are OWNER REPO [REF [DIR]], with the access token
// taken from the GITHUB_TOKEN environment variable.
package github

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"

	gh "github.com/google/go-github/v68/github"

	"github.com/byte4ever/tplchain/template"
)

// Config holds the settings needed to read templates from a GitHub
// repository.
type Config struct {
	// Owner is the GitHub user or organisation that owns the
	// repository.
	Owner string
	// Repo is the repository name (without owner).
	Repo string
	// Ref is the branch, tag or commit to read from. Empty means
	// the repository default branch.
	Ref string
	// Dir is an optional path prefix inside the repository under
	// which templates live.
	Dir string
	// AccessToken is a personal access token or GitHub App token
	// used for authentication. Without one the loader is unusable.
	AccessToken string
	// EnterpriseHost is an optional GitHub Enterprise hostname
	// (e.g. "git.corp.example.com"). Leave empty for github.com.
	EnterpriseHost string
}

// Loader reads template files from a GitHub repository.
//
// Pattern: Strategy -- implements template.Loader.
type Loader struct {
	client *gh.Client
	cfg    Config
	usable bool
}

// NewLoader validates cfg and returns a Loader. A missing access
// token does not fail construction; it makes the loader unusable so
// the registry drops it from the chain.
func NewLoader(cfg Config) (*Loader, error) {
	const errCtx = "creating github loader"

	if cfg.Owner == "" {
		return nil, fmt.Errorf(
			"%s: repo owner must be set", errCtx,
		)
	}

	if cfg.Repo == "" {
		return nil, fmt.Errorf(
			"%s: repo must be set", errCtx,
		)
	}

	client := gh.NewClient(nil)
	if cfg.AccessToken != "" {
		client = client.WithAuthToken(cfg.AccessToken)
	}

	if cfg.EnterpriseHost != "" {
		baseURL := "https://" +
			cfg.EnterpriseHost + "/api/v3/"
		uploadURL := "https://" +
			cfg.EnterpriseHost + "/api/uploads/"

		var err error

		client, err = client.WithEnterpriseURLs(
			baseURL, uploadURL,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: enterprise urls: %w",
				errCtx, err,
			)
		}
	}

	return &Loader{
		client: client,
		cfg:    cfg,
		usable: cfg.AccessToken != "",
	}, nil
}

// Usable reports whether an access token was provided. Without one,
// unauthenticated lookups would fail every resolution on rate limits,
// so the loader is excluded from the chain instead.
func (lo *Loader) Usable() bool {
	return lo.usable
}

// Load fetches the file at the configured prefix plus name. HTTP 404
// is reported as not found; every other API failure aborts
// resolution.
func (lo *Loader) Load(
	name string,
	_ []string,
	_ *template.Origin,
) (template.Content, error) {
	const errCtx = "loading template from github"

	pa := path.Join(lo.cfg.Dir, name)

	file, _, resp, err := lo.client.Repositories.GetContents(
		context.Background(),
		lo.cfg.Owner,
		lo.cfg.Repo,
		pa,
		&gh.RepositoryContentGetOptions{Ref: lo.cfg.Ref},
	)
	if err != nil {
		if resp != nil &&
			resp.StatusCode == http.StatusNotFound {
			return nil, &template.NotFoundError{Name: name}
		}

		return nil, fmt.Errorf(
			"%s %s: %w", errCtx, pa, err,
		)
	}

	// A directory listing is not a template.
	if file == nil {
		return nil, &template.NotFoundError{Name: name}
	}

	src, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf(
			"%s: decoding %s: %w", errCtx, pa, err,
		)
	}

	display := fmt.Sprintf(
		"github://%s/%s/%s",
		lo.cfg.Owner, lo.cfg.Repo, pa,
	)
	if lo.cfg.Ref != "" {
		display += "@" + lo.cfg.Ref
	}

	return template.Source{
		Text:        src,
		DisplayName: display,
	}, nil
}

func init() {
	template.Register("github", template.Constructor(
		func(args ...string) (template.Loader, error) {
			if len(args) < 2 || len(args) > 4 {
				return nil, fmt.Errorf(
					"github loader takes OWNER REPO [REF [DIR]], got %d arguments",
					len(args),
				)
			}

			cfg := Config{
				Owner:       args[0],
				Repo:        args[1],
				AccessToken: os.Getenv("GITHUB_TOKEN"),
			}

			if len(args) > 2 {
				cfg.Ref = args[2]
			}

			if len(args) > 3 {
				cfg.Dir = args[3]
			}

			return NewLoader(cfg)
		},
	))
}
