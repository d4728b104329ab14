// Package git checks out and refreshes the service source trees. The
// git binary does the work; this package only assembles argument
// vectors and keeps credentials out of log lines.
package git

import (
	"context"
	"fmt"
	"net/url"

	"github.com/whilp/git-urls"

	"github.com/hoover/setup/pkg/extcmd"
)

// Remote points at a git repo somewhere.
type Remote struct {
	// URL is where we clone from
	URL string
}

// SafeURL returns the URL with any credentials stripped, for logging.
func (r Remote) SafeURL() string {
	u, err := giturls.Parse(r.URL)
	if err != nil {
		return fmt.Sprintf("<unparseable: %s>", r.URL)
	}
	if u.User != nil {
		u.User = url.User(u.User.Username())
	}
	return u.String()
}

// Clone fetches origin into dir. When branch is non-empty the clone
// starts out on that branch.
func Clone(ctx context.Context, run extcmd.Runner, dir string, origin Remote, branch string) error {
	args := []string{"git", "clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, origin.URL, dir)
	if err := run.Run(ctx, "", args...); err != nil {
		return CloningError(origin, err)
	}
	return nil
}

// Checkout switches the clone at dir to ref.
func Checkout(ctx context.Context, run extcmd.Runner, dir, ref string) error {
	return run.Run(ctx, dir, "git", "checkout", ref, "--")
}

// Pull brings the clone at dir up to date with its origin.
func Pull(ctx context.Context, run extcmd.Runner, dir string) error {
	return run.Run(ctx, dir, "git", "pull")
}
