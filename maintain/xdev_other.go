//go:build !unix && !windows

package maintain

func isCrossDevice(error) bool {
	return false
}
