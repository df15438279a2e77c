package bindgroup

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
)

// provider is the unexported implementation of Provider.
type provider struct {
	// label is a debug label attached to GPU objects created for this provider.
	label string

	// The following fields are GPU allocated resources and must be released when no
	// longer needed. They are populated by the Renderer during initialization, not by
	// user-creation.

	// bindGroup is the GPU bind group created for this provider, or nil if not initialized with the Renderer.
	bindGroup *wgpu.BindGroup
	// bindGroupLayout is the GPU bind group layout created for this provider, or nil if not initialized with the Renderer.
	bindGroupLayout *wgpu.BindGroupLayout
	// buffers holds the GPU uniform and storage buffers created for this provider, keyed by binding index.
	buffers map[int]*wgpu.Buffer

	// The following fields stage geometry and per-instance data for draw calls.

	// vertexBuffer is the GPU vertex buffer created for this provider, or nil if not initialized with the Renderer.
	vertexBuffer *wgpu.Buffer
	// indexBuffer is the GPU index buffer created for this provider, or nil if not initialized with the Renderer.
	indexBuffer *wgpu.Buffer
	// instanceBuffer is the GPU buffer holding per-instance records, bound at the
	// instance-stepped vertex slot. Nil for providers that draw a single instance.
	instanceBuffer *wgpu.Buffer
	// indexCount is the number of indices for draw calls.
	indexCount int
	// instanceCount is the number of instances for draw calls. Zero means one instance.
	instanceCount int
}

// Provider describes the GPU binding requirements of a renderable component.
// Components (camera, cell sets, instanced meshes) hold a Provider to stage
// their buffer layout; the Renderer then uses it to create and update GPU
// resources.
//
// Usage pattern:
//  1. Component creates a Provider with a label
//  2. Renderer.InitMeshBuffers uploads geometry and instance data
//  3. Renderer.InitBindGroup creates the bind group from a shader's layout
//  4. Renderer.WriteBuffers updates uniform and storage contents per frame
//  5. Renderer.DrawCall reads the buffers and counts to issue the draw
type Provider interface {
	// Release releases all GPU resources held by this provider.
	Release()

	// Label returns the debug label for this provider.
	Label() string

	// BindGroup returns the created bind group for shader binding, or nil if GPU
	// resources have not been initialized.
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the created bind group layout, or nil if GPU
	// resources have not been initialized.
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the GPU buffer for a specific binding, or nil if not set.
	//
	// Parameters:
	//   - binding: the binding index within the group
	Buffer(binding int) *wgpu.Buffer

	// Buffers returns all buffers associated with this provider, keyed by binding index.
	Buffers() map[int]*wgpu.Buffer

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the GPU index buffer, or nil if not initialized.
	IndexBuffer() *wgpu.Buffer

	// InstanceBuffer returns the GPU per-instance buffer, or nil for single-instance providers.
	InstanceBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices for draw calls.
	IndexCount() int

	// InstanceCount returns the number of instances for draw calls. The renderer
	// treats zero as a single instance.
	InstanceCount() int

	// SetBindGroup stores the bind group after GPU initialization.
	// Called by Renderer.InitBindGroup().
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBindGroupLayout stores the bind group layout after GPU initialization.
	// Called by Renderer.InitBindGroup().
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetBuffer stores a GPU buffer for a specific binding.
	//
	// Parameters:
	//   - binding: the binding index within the group
	//   - buf: the created buffer
	SetBuffer(binding int, buf *wgpu.Buffer)

	// SetVertexBuffer stores the GPU vertex buffer after creation.
	SetVertexBuffer(buf *wgpu.Buffer)

	// SetIndexBuffer stores the GPU index buffer after creation.
	SetIndexBuffer(buf *wgpu.Buffer)

	// SetInstanceBuffer stores the GPU per-instance buffer after creation.
	SetInstanceBuffer(buf *wgpu.Buffer)

	// SetIndexCount sets the number of indices for draw calls.
	SetIndexCount(count int)

	// SetInstanceCount sets the number of instances for draw calls.
	SetInstanceCount(count int)
}

// Compile-time check that provider implements Provider
var _ Provider = &provider{}

// NewProvider creates a new Provider with the provided options. An empty label is
// replaced with a generated UUID so every GPU object stays traceable in captures.
//
// Parameters:
//   - label: the debug label for GPU objects, or empty to generate one
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - Provider: a new instance configured with the provided options
func NewProvider(label string, options ...ProviderOption) Provider {
	if label == "" {
		label = uuid.NewString()
	}
	p := &provider{
		label:   label,
		buffers: make(map[int]*wgpu.Buffer),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *provider) Label() string {
	return p.label
}

func (p *provider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *provider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *provider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *provider) Buffers() map[int]*wgpu.Buffer {
	return p.buffers
}

func (p *provider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *provider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *provider) InstanceBuffer() *wgpu.Buffer {
	return p.instanceBuffer
}

func (p *provider) IndexCount() int {
	return p.indexCount
}

func (p *provider) InstanceCount() int {
	return p.instanceCount
}

func (p *provider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *provider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *provider) SetBuffer(binding int, buf *wgpu.Buffer) {
	if p.buffers == nil {
		p.buffers = make(map[int]*wgpu.Buffer)
	}
	p.buffers[binding] = buf
}

func (p *provider) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *provider) SetIndexBuffer(buf *wgpu.Buffer) {
	p.indexBuffer = buf
}

func (p *provider) SetInstanceBuffer(buf *wgpu.Buffer) {
	p.instanceBuffer = buf
}

func (p *provider) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *provider) SetInstanceCount(count int) {
	p.instanceCount = count
}

func (p *provider) Release() {
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
			delete(p.buffers, i)
		}
	}

	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
	if p.instanceBuffer != nil {
		p.instanceBuffer.Release()
		p.instanceBuffer = nil
	}
}
