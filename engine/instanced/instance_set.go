package instanced

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cellscape/cellscape/engine/renderer/bindgroup"
)

const (
	// instanceStride is the byte size of one packed GPUInstanceData record.
	instanceStride = 32

	// parallelPackThreshold is the instance count above which Pack fans the
	// marshal work out across the worker pool. Below it the per-task overhead
	// costs more than the packing itself.
	parallelPackThreshold = 2048
)

// instanceSet is the implementation of InstanceSet.
type instanceSet struct {
	mu *sync.Mutex

	instances []GPUInstanceData
	provider  bindgroup.Provider

	// packPool manages a bounded set of reusable goroutines for parallel
	// instance packing. Workers persist across Pack calls, avoiding per-frame
	// goroutine spawn/teardown overhead.
	packPool    worker.DynamicWorkerPool
	packWorkers int
}

// InstanceSet owns the CPU-side slice of per-instance records for one
// instanced draw and packs them into a GPU-upload byte buffer. The packed
// buffer feeds the instance-stepped vertex buffer; the record count defines
// the draw call's instance count. The set never mutates GPU state itself —
// uploading the packed bytes is the renderer's job.
type InstanceSet interface {
	// Count returns the number of instance records in the set.
	Count() int

	// Instance retrieves the record at index i.
	//
	// Parameters:
	//   - i: the record index, 0 <= i < Count()
	Instance(i int) GPUInstanceData

	// SetInstance replaces the record at index i.
	//
	// Parameters:
	//   - i: the record index, 0 <= i < Count()
	//   - record: the new record value
	SetInstance(i int, record GPUInstanceData)

	// Append adds records to the end of the set.
	//
	// Parameters:
	//   - records: the records to append
	Append(records ...GPUInstanceData)

	// Pack serializes every record into a single contiguous little-endian
	// byte buffer ready for instance buffer upload. Large sets are packed in
	// parallel across the worker pool; the result is byte-identical to
	// serial packing.
	//
	// Returns:
	//   - []byte: Count()*32 bytes, records in index order
	Pack() []byte

	// Provider returns the set's bind group provider, which carries the GPU
	// instance buffer once the renderer initializes it.
	Provider() bindgroup.Provider
}

var _ InstanceSet = &instanceSet{}

// NewInstanceSet creates an InstanceSet.
//
// Parameters:
//   - options: functional options to configure the set
//
// Returns:
//   - InstanceSet: the newly created set
func NewInstanceSet(options ...InstanceSetOption) InstanceSet {
	s := &instanceSet{
		mu:          &sync.Mutex{},
		provider:    bindgroup.NewProvider(""),
		packWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(s)
	}
	s.packPool = worker.NewDynamicWorkerPool(s.packWorkers, 256, 1*time.Second)
	return s
}

func (s *instanceSet) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.instances)
}

func (s *instanceSet) Instance(i int) GPUInstanceData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instances[i]
}

func (s *instanceSet) SetInstance(i int, record GPUInstanceData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances[i] = record
}

func (s *instanceSet) Append(records ...GPUInstanceData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances = append(s.instances, records...)
}

func (s *instanceSet) Provider() bindgroup.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider
}

func (s *instanceSet) Pack() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.instances) == 0 {
		return nil
	}

	buf := make([]byte, len(s.instances)*instanceStride)
	if len(s.instances) < parallelPackThreshold {
		for i := range s.instances {
			s.instances[i].marshalInto(buf[i*instanceStride:])
		}
		return buf
	}

	// Each task marshals a disjoint range of records into a disjoint range of
	// the output buffer, so no synchronization beyond the barrier is needed.
	// A WaitGroup provides the barrier since pool.Wait() blocks until workers
	// idle-exit, which is unsuitable for per-frame workloads.
	chunk := (len(s.instances) + s.packWorkers - 1) / s.packWorkers
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(s.instances); start += chunk {
		end := min(start+chunk, len(s.instances))
		wg.Add(1)
		lo, hi := start, end
		id := taskID
		taskID++
		s.packPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					s.instances[i].marshalInto(buf[i*instanceStride:])
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return buf
}
