//go:build !cgo

package hal

import "errors"

// RunWindow is unavailable without cgo. Use RunHeadless instead.
func RunWindow(_ HostConfig, _ NewAppFunc) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
