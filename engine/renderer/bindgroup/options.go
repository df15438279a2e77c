package bindgroup

import "github.com/cogentcore/webgpu/wgpu"

// ProviderOption is a functional option used to configure a Provider during construction.
type ProviderOption func(*provider)

// WithBindGroup sets a pre-created bind group for this provider.
//
// Parameters:
//   - bg: the bind group to set
//
// Returns:
//   - ProviderOption: a function that sets the bind group
func WithBindGroup(bg *wgpu.BindGroup) ProviderOption {
	return func(p *provider) {
		p.bindGroup = bg
	}
}

// WithBindGroupLayout sets a pre-created bind group layout for this provider.
//
// Parameters:
//   - bgl: the bind group layout to set
//
// Returns:
//   - ProviderOption: a function that sets the bind group layout
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) ProviderOption {
	return func(p *provider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer sets a buffer for a specific binding index.
//
// Parameters:
//   - binding: the binding index for this buffer
//   - buf: the buffer to associate with this binding
//
// Returns:
//   - ProviderOption: a function that sets the buffer for the specified binding
func WithBuffer(binding int, buf *wgpu.Buffer) ProviderOption {
	return func(p *provider) {
		p.buffers[binding] = buf
	}
}

// WithInstanceCount sets the number of instances drawn with this provider.
//
// Parameters:
//   - count: the instance count
//
// Returns:
//   - ProviderOption: a function that sets the instance count
func WithInstanceCount(count int) ProviderOption {
	return func(p *provider) {
		p.instanceCount = count
	}
}
