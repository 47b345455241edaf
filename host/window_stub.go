//go:build !cgo

package host

import "errors"

// RunWindow reports that window mode is unavailable in this build.
func RunWindow(_ Config) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
