//go:build icicle

package msm

import (
	"github.com/spaceandtimefdn/blitzar/exec/backend"
	"github.com/spaceandtimefdn/blitzar/exec/backend/gpu"
)

func newGPUBackend() (backend.Device, error) {
	return gpu.New()
}
