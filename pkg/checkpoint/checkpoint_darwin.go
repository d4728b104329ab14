package checkpoint

import (
	"golang.org/x/sys/unix"
)

func getKernelVersion() string {
	v, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return ""
	}
	return "darwin-" + v
}
