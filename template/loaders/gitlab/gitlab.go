// Package gitlab loads templates from a GitLab project through the
// repository files API. It registers itself under the loader name
// "gitlab"; spec arguments are PROJECT [REF [DIR [HOST]]], with the
// access token taken from the GITLAB_TOKEN environment variable.
package gitlab

import (
	"fmt"
	"net/http"
	"os"
	"path"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/byte4ever/tplchain/template"
)

// Config holds the settings needed to read templates from a GitLab
// project.
type Config struct {
	// Host is the base URL of the GitLab instance
	// (e.g. "https://gitlab.com").
	Host string
	// Project is the full project path (e.g. "org/project").
	Project string
	// Ref is the branch, tag or commit to read from. Empty means
	// the project default branch.
	Ref string
	// Dir is an optional path prefix inside the project under
	// which templates live.
	Dir string
	// AccessToken is a personal or project access token used for
	// authentication. Without one the loader is unusable.
	AccessToken string
}

// Loader reads template files from a GitLab project.
//
// Pattern: Strategy -- implements template.Loader.
type Loader struct {
	client *gl.Client
	cfg    Config
	usable bool
}

// NewLoader validates cfg and returns a Loader. A missing access
// token does not fail construction; it makes the loader unusable so
// the registry drops it from the chain.
func NewLoader(cfg Config) (*Loader, error) {
	const errCtx = "creating gitlab loader"

	if cfg.Project == "" {
		return nil, fmt.Errorf(
			"%s: project must be set", errCtx,
		)
	}

	host := cfg.Host
	if host == "" {
		host = "https://gitlab.com"
	}

	client, err := gl.NewClient(
		cfg.AccessToken,
		gl.WithBaseURL(host),
	)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: new client: %w", errCtx, err,
		)
	}

	return &Loader{
		client: client,
		cfg:    cfg,
		usable: cfg.AccessToken != "",
	}, nil
}

// Usable reports whether an access token was provided.
func (lo *Loader) Usable() bool {
	return lo.usable
}

// Load fetches the raw file at the configured prefix plus name. HTTP
// 404 is reported as not found; every other API failure aborts
// resolution.
func (lo *Loader) Load(
	name string,
	_ []string,
	_ *template.Origin,
) (template.Content, error) {
	const errCtx = "loading template from gitlab"

	pa := path.Join(lo.cfg.Dir, name)

	opt := &gl.GetRawFileOptions{}
	if lo.cfg.Ref != "" {
		opt.Ref = gl.Ptr(lo.cfg.Ref)
	}

	raw, resp, err := lo.client.RepositoryFiles.GetRawFile(
		lo.cfg.Project, pa, opt,
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

	display := fmt.Sprintf(
		"gitlab://%s/%s", lo.cfg.Project, pa,
	)
	if lo.cfg.Ref != "" {
		display += "@" + lo.cfg.Ref
	}

	return template.Source{
		Text:        string(raw),
		DisplayName: display,
	}, nil
}

func init() {
	template.Register("gitlab", template.Constructor(
		func(args ...string) (template.Loader, error) {
			if len(args) < 1 || len(args) > 4 {
				return nil, fmt.Errorf(
					"gitlab loader takes PROJECT [REF [DIR [HOST]]], got %d arguments",
					len(args),
				)
			}

			cfg := Config{
				Project:     args[0],
				AccessToken: os.Getenv("GITLAB_TOKEN"),
			}

			if len(args) > 1 {
				cfg.Ref = args[1]
			}

			if len(args) > 2 {
				cfg.Dir = args[2]
			}

			if len(args) > 3 {
				cfg.Host = args[3]
			}

			return NewLoader(cfg)
		},
	))
}
