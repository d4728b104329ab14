package checkpoint

import (
	"github.com/go-kit/kit/log"
	"github.com/weaveworks/go-checkpoint"
)

const product = "hoover-setup"

// Status is the answer from the release endpoint.
type Status struct {
	Outdated bool
	Latest   string
	URL      string
}

// Check asks the release endpoint whether this build is current.
// Setting CHECKPOINT_DISABLE in the environment turns the call into a
// no-op that reports up to date.
func Check(version string) (Status, error) {
	r, err := checkpoint.Check(&checkpoint.CheckParams{
		Product:       product,
		Version:       version,
		SignatureFile: "",
		Flags: map[string]string{
			"kernel-version": getKernelVersion(),
		},
	})
	if err != nil {
		return Status{}, err
	}
	return Status{
		Outdated: r.Outdated,
		Latest:   r.CurrentVersion,
		URL:      r.CurrentDownloadURL,
	}, nil
}

// LogCheck runs Check and logs the outcome. The surrounding operation
// never fails because the check did.
func LogCheck(version string, logger log.Logger) {
	s, err := Check(version)
	if err != nil {
		logger.Log("err", err)
		return
	}
	if s.Outdated {
		logger.Log("msg", "update available", "latest", s.Latest, "URL", s.URL)
		return
	}
	logger.Log("msg", "up to date", "latest", s.Latest)
}
