package instanced

import (
	"github.com/cellscape/cellscape/engine/renderer/bindgroup"
)

// InstanceSetOption is a functional option for configuring an InstanceSet.
type InstanceSetOption func(*instanceSet)

// WithInstances seeds the set with initial records.
//
// Parameters:
//   - records: the initial instance records
//
// Returns:
//   - InstanceSetOption: functional option to set the initial records
func WithInstances(records []GPUInstanceData) InstanceSetOption {
	return func(s *instanceSet) {
		s.instances = records
	}
}

// WithProvider attaches a bind group provider to the set.
//
// Parameters:
//   - provider: the bind group provider carrying the GPU instance buffer
//
// Returns:
//   - InstanceSetOption: functional option to set the provider
func WithProvider(provider bindgroup.Provider) InstanceSetOption {
	return func(s *instanceSet) {
		s.provider = provider
	}
}

// WithPackWorkers sets the worker count for parallel packing.
//
// Parameters:
//   - workers: number of pool workers (defaults to NumCPU-1, minimum 1)
//
// Returns:
//   - InstanceSetOption: functional option to set the worker count
func WithPackWorkers(workers int) InstanceSetOption {
	return func(s *instanceSet) {
		if workers > 0 {
			s.packWorkers = workers
		}
	}
}
