// +build !linux,!darwin

package checkpoint

func getKernelVersion() string {
	return ""
}
