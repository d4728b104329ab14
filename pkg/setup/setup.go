// Package setup orchestrates the lifecycle operations of a deployment:
// install, configure, upgrade, update, and the terminal delegates that
// hand the process over to a service. Each operation is a strictly
// sequential series of steps that stops at the first failure, leaving
// earlier side effects in place for inspection.
package setup

import (
	"path/filepath"

	"github.com/go-kit/kit/log"

	"github.com/hoover/setup/pkg/extcmd"
	"github.com/hoover/setup/pkg/params"
)

// Setup wires together what every operation needs: the parameter
// registry (via its declared handles), the external command runner,
// and a logger.
type Setup struct {
	Params *Params
	Runner extcmd.Runner
	Logger log.Logger
}

// Params holds the typed handles for every declared parameter, in the
// order diagnostic listings show them.
type Params struct {
	Home       params.StringValue
	ConfigDir  params.StringValue
	SearchRepo params.StringValue
	SnoopRepo  params.StringValue
	UIRepo     params.StringValue
	RepoBranch params.StringValue
	SearchDB   params.StringValue
	SnoopDB    params.StringValue
	ESURL      params.StringValue
	DataDir    params.StringValue

	AllowedHosts params.ListValue
	Debug        params.BoolValue

	OAuthClientID     params.StringValue
	OAuthClientSecret params.StringValue
	SevenzipPath      params.StringValue
	MsgconvertPath    params.StringValue
	ReadpstPath       params.StringValue
}

// Declare registers every deployment parameter on r. The install root
// defaults to ./hoover, like the original bootstrap; everything else
// defaults to values that work for a single-host deployment next to a
// local PostgreSQL and Elasticsearch.
func Declare(r *params.Registry) *Params {
	return &Params{
		Home: r.Path(params.Spec{
			Name: "home", Env: "HOOVER_HOME",
			Default: params.Default("./hoover"), Required: true,
		}),
		ConfigDir: r.Path(params.Spec{
			Name: "config-dir", Env: "HOOVER_CONFIG_DIR",
		}),
		SearchRepo: r.String(params.Spec{
			Name: "search-repo", Env: "HOOVER_SEARCH_REPO",
			Default: params.Default("https://github.com/hoover/search.git"), Required: true,
		}),
		SnoopRepo: r.String(params.Spec{
			Name: "snoop-repo", Env: "HOOVER_SNOOP_REPO",
			Default: params.Default("https://github.com/hoover/snoop.git"), Required: true,
		}),
		UIRepo: r.String(params.Spec{
			Name: "ui-repo", Env: "HOOVER_UI_REPO",
			Default: params.Default("https://github.com/hoover/ui.git"), Required: true,
		}),
		RepoBranch: r.String(params.Spec{
			Name: "repo-branch", Env: "HOOVER_REPO_BRANCH",
			Default: params.Default("master"), Required: true,
		}),
		SearchDB: r.String(params.Spec{
			Name: "search-db", Env: "HOOVER_SEARCH_DB",
			Default: params.Default("hoover-search"), Required: true,
			Prompt: "PostgreSQL search database",
		}),
		SnoopDB: r.String(params.Spec{
			Name: "snoop-db", Env: "HOOVER_SNOOP_DB",
			Default: params.Default("hoover-snoop"), Required: true,
			Prompt: "PostgreSQL snoop database",
		}),
		ESURL: r.String(params.Spec{
			Name: "es-url", Env: "HOOVER_ES_URL",
			Default: params.Default("http://localhost:9200"), Required: true,
			Prompt: "Elasticsearch URL",
		}),
		DataDir: r.Path(params.Spec{
			Name: "data-dir", Env: "HOOVER_DATA_DIR",
			Default: params.Default("/tmp/dataset"), Required: true,
			Prompt: "Path to dataset",
		}),
		AllowedHosts: r.StringList(params.Spec{
			Name: "allowed-hosts", Env: "HOOVER_ALLOWED_HOSTS",
			Default: params.Default("localhost"), Required: true,
			Prompt: "Allowed hostnames",
		}),
		Debug: r.Bool(params.Spec{
			Name: "debug", Env: "HOOVER_DEBUG",
			Default: params.Default("false"), Required: true,
		}),
		OAuthClientID: r.String(params.Spec{
			Name: "oauth-client-id", Env: "HOOVER_OAUTH_CLIENT_ID",
		}),
		OAuthClientSecret: r.String(params.Spec{
			Name: "oauth-client-secret", Env: "HOOVER_OAUTH_CLIENT_SECRET",
		}),
		SevenzipPath: r.Path(params.Spec{
			Name: "sevenzip-path", Env: "HOOVER_SEVENZIP_PATH",
		}),
		MsgconvertPath: r.Path(params.Spec{
			Name: "msgconvert-path", Env: "HOOVER_MSGCONVERT_PATH",
		}),
		ReadpstPath: r.Path(params.Spec{
			Name: "readpst-path", Env: "HOOVER_READPST_PATH",
		}),
	}
}

// home resolves the install root as an absolute path, since it ends up
// embedded in the wrapper script and exported to delegates.
func (s *Setup) home() (string, error) {
	h, err := s.Params.Home.Resolve()
	if err != nil {
		return "", err
	}
	return filepath.Abs(h)
}
