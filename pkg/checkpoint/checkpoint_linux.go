// +build linux

package checkpoint

import (
	"golang.org/x/sys/unix"
)

func getKernelVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return cstringToString(uts.Release[:])
}

func cstringToString(c []byte) string {
	for i, b := range c {
		if b == 0 {
			return string(c[:i])
		}
	}
	return string(c)
}
