package msm

import (
	"fmt"
	"sync"

	"github.com/spaceandtimefdn/blitzar/exec/backend"
	"github.com/spaceandtimefdn/blitzar/exec/backend/cpu"
)

var (
	initMu         sync.Mutex
	activeBackend  backend.Device = cpu.New(0)
	activeBackendName            = "cpu"
)

// Init selects the compute backend, mirroring §6's
// init(backend, num_precomputed_elements). numPrecomputedElements is
// accepted for that signature and is not used. "gpu" requires the module
// to have been built with -tags icicle; requesting it otherwise is a
// configuration error, returned rather than panicked (spec §7).
func Init(backendName string, numPrecomputedElements int) error {
	initMu.Lock()
	defer initMu.Unlock()
	switch backendName {
	case "cpu", "":
		activeBackend = cpu.New(0)
		activeBackendName = "cpu"
		return nil
	case "gpu":
		dev, err := newGPUBackend()
		if err != nil {
			return fmt.Errorf("msm: gpu backend unavailable: %w", err)
		}
		activeBackend = dev
		activeBackendName = "gpu"
		return nil
	default:
		return fmt.Errorf("msm: unknown backend %q", backendName)
	}
}

// ActiveBackend returns the backend selected by the most recent Init
// call (cpu by default).
func ActiveBackend() backend.Device {
	initMu.Lock()
	defer initMu.Unlock()
	return activeBackend
}

// ActiveBackendName reports "cpu" or "gpu".
func ActiveBackendName() string {
	initMu.Lock()
	defer initMu.Unlock()
	return activeBackendName
}
