//go:build !icicle

package msm

import (
	"fmt"

	"github.com/spaceandtimefdn/blitzar/exec/backend"
)

func newGPUBackend() (backend.Device, error) {
	return nil, fmt.Errorf("module built without the icicle build tag; rebuild with -tags icicle")
}
