package setup

import (
	"path/filepath"
	"text/template"

	"github.com/imdario/mergo"

	"github.com/hoover/setup/pkg/git"
	"github.com/hoover/setup/pkg/params"
	"github.com/hoover/setup/pkg/secrets"
	"github.com/hoover/setup/pkg/settings"
)

// Service describes one deployable piece of the suite: where its
// checkout lives under the install root, what settings artifact it
// reads, and how the run operation serves it.
type Service struct {
	Name string
	// Artifact is the settings file the service reads, relative to the
	// install root; empty for services without one.
	Artifact string
	// WSGI is the application target its server runs; empty for
	// services that are not served by the run operation.
	WSGI string
	// Python marks services with a virtualenv and requirements.txt.
	Python bool
}

var (
	Search = Service{
		Name:     "search",
		Artifact: filepath.Join("search", "hoover", "site", "settings", "local.py"),
		WSGI:     "hoover.site.wsgi:application",
		Python:   true,
	}
	Snoop = Service{
		Name:     "snoop",
		Artifact: filepath.Join("snoop", "snoop", "site", "settings", "local.py"),
		WSGI:     "snoop.site.wsgi:application",
		Python:   true,
	}
	UI = Service{
		Name: "ui",
	}
)

// Services lists every service, in install order.
var Services = []Service{Search, Snoop, UI}

// ServiceNamed looks a service up by name.
func ServiceNamed(name string) (Service, bool) {
	for _, svc := range Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}

var searchSettings = template.Must(template.New("search").Funcs(settings.Funcs).Parse(
	`from pathlib import Path
base_dir = Path(__file__).absolute().parent.parent.parent.parent
SECRET_KEY = {{pystr .secret_key}}
DEBUG = {{pybool .debug}}
ALLOWED_HOSTS = {{pylist .allowed_hosts}}
DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.postgresql_psycopg2',
        'NAME': {{pystr .db_name}},
    },
}
STATIC_ROOT = str(base_dir / 'static')
HOOVER_UPLOADS_ROOT = str(base_dir / 'uploads')
HOOVER_ELASTICSEARCH_URL = {{pystr .es_url}}
HOOVER_UI_ROOT = {{pystr .ui_root}}
OAUTH_CLIENT_ID = {{pystr .oauth_client_id}}
OAUTH_CLIENT_SECRET = {{pystr .oauth_client_secret}}
`))

var snoopSettings = template.Must(template.New("snoop").Funcs(settings.Funcs).Parse(
	`SECRET_KEY = {{pystr .secret_key}}
DEBUG = {{pybool .debug}}
ALLOWED_HOSTS = {{pylist .allowed_hosts}}
DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.postgresql_psycopg2',
        'NAME': {{pystr .db_name}},
    }
}
SNOOP_ROOT = {{pystr .data_path}}
SNOOP_ELASTICSEARCH_URL = {{pystr .es_url}}
SNOOP_ARCHIVE_CACHE_ROOT = {{pystr .archive_cache_root}}
SNOOP_MSG_CACHE = {{pystr .msg_cache_root}}
SNOOP_PST_CACHE_ROOT = {{pystr .pst_cache_root}}
SNOOP_SEVENZIP_BINARY = {{pystr .sevenzip_path}}
SNOOP_MSGCONVERT_SCRIPT = {{pystr .msgconvert_path}}
SNOOP_READPST_BINARY = {{pystr .readpst_path}}
`))

// settingsTemplate returns the template for a service's artifact.
func settingsTemplate(svc Service) *template.Template {
	switch svc.Name {
	case Search.Name:
		return searchSettings
	case Snoop.Name:
		return snoopSettings
	}
	return nil
}

func (s *Setup) repoFor(svc Service) (git.Remote, error) {
	var h params.StringValue
	switch svc.Name {
	case Search.Name:
		h = s.Params.SearchRepo
	case Snoop.Name:
		h = s.Params.SnoopRepo
	case UI.Name:
		h = s.Params.UIRepo
	}
	url, err := h.Resolve()
	if err != nil {
		return git.Remote{}, err
	}
	return git.Remote{URL: url}, nil
}

// sharedVars are the values every settings template receives.
func (s *Setup) sharedVars() (map[string]interface{}, error) {
	esURL, err := s.Params.ESURL.Resolve()
	if err != nil {
		return nil, err
	}
	hosts, err := s.Params.AllowedHosts.Resolve()
	if err != nil {
		return nil, err
	}
	debug, err := s.Params.Debug.Resolve()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"es_url":        esURL,
		"allowed_hosts": hosts,
		"debug":         debug,
	}, nil
}

func (s *Setup) varsFor(svc Service, home string) (map[string]interface{}, error) {
	var vars map[string]interface{}
	var err error
	switch svc.Name {
	case Search.Name:
		vars, err = s.searchVars(home)
	case Snoop.Name:
		vars, err = s.snoopVars(home)
	}
	if err != nil {
		return nil, err
	}
	shared, err := s.sharedVars()
	if err != nil {
		return nil, err
	}
	if err := mergo.Merge(&vars, shared); err != nil {
		return nil, err
	}
	return vars, nil
}

func (s *Setup) searchVars(home string) (map[string]interface{}, error) {
	db, err := s.Params.SearchDB.Resolve()
	if err != nil {
		return nil, err
	}
	clientID, err := s.Params.OAuthClientID.Resolve()
	if err != nil {
		return nil, err
	}
	clientSecret, err := s.Params.OAuthClientSecret.Resolve()
	if err != nil {
		return nil, err
	}
	secret, err := secrets.New()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"secret_key":          secret,
		"db_name":             db,
		"ui_root":             filepath.Join(home, "ui", "build"),
		"oauth_client_id":     clientID,
		"oauth_client_secret": clientSecret,
	}, nil
}

func (s *Setup) snoopVars(home string) (map[string]interface{}, error) {
	db, err := s.Params.SnoopDB.Resolve()
	if err != nil {
		return nil, err
	}
	dataDir, err := s.Params.DataDir.Resolve()
	if err != nil {
		return nil, err
	}
	sevenzip, err := s.Params.SevenzipPath.Resolve()
	if err != nil {
		return nil, err
	}
	msgconvert, err := s.Params.MsgconvertPath.Resolve()
	if err != nil {
		return nil, err
	}
	readpst, err := s.Params.ReadpstPath.Resolve()
	if err != nil {
		return nil, err
	}
	secret, err := secrets.New()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"secret_key":         secret,
		"db_name":            db,
		"data_path":          dataDir,
		"archive_cache_root": filepath.Join(home, "cache", "archives"),
		"msg_cache_root":     filepath.Join(home, "cache", "msg"),
		"pst_cache_root":     filepath.Join(home, "cache", "pst"),
		"sevenzip_path":      sevenzip,
		"msgconvert_path":    msgconvert,
		"readpst_path":       readpst,
	}, nil
}
