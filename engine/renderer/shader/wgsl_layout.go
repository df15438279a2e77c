package shader

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// vertexFormatInfo pairs a wgpu vertex format with its packed byte size.
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// parsedField is one field of a WGSL struct with its attributes resolved.
type parsedField struct {
	name      string
	typeName  string
	location  int // -1 when the field has no @location attribute
	isBuiltin bool
}

// parsedStruct is a WGSL struct declaration with all of its fields.
type parsedStruct struct {
	name   string
	fields []parsedField
}

// wgslTypeLayout describes the memory footprint of a WGSL type under the
// standard struct layout rules: its size in bytes and its required alignment.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// wgslScalarLayouts covers the plain scalar, vector, and matrix types whose
// layout is fixed by the WGSL specification.
var wgslScalarLayouts = map[string]wgslTypeLayout{
	"f32":         {4, 4},
	"i32":         {4, 4},
	"u32":         {4, 4},
	"vec2f":       {8, 8},
	"vec2<f32>":   {8, 8},
	"vec2<i32>":   {8, 8},
	"vec2<u32>":   {8, 8},
	"vec3f":       {12, 16},
	"vec3<f32>":   {12, 16},
	"vec3<i32>":   {12, 16},
	"vec3<u32>":   {12, 16},
	"vec4f":       {16, 16},
	"vec4<f32>":   {16, 16},
	"vec4<i32>":   {16, 16},
	"vec4<u32>":   {16, 16},
	"mat3x3<f32>": {48, 16},
	"mat3x3f":     {48, 16},
	"mat4x4<f32>": {64, 16},
	"mat4x4f":     {64, 16},
}

// arrayTypeRegex captures the element type and optional count from array<T> or array<T, N>.
var arrayTypeRegex = regexp.MustCompile(`^array<\s*(.+?)\s*(?:,\s*(\d+)\s*)?>$`)

// roundUpAlign rounds n up to the next multiple of align.
func roundUpAlign(n, align uint64) uint64 {
	if align == 0 {
		return n
	}
	return (n + align - 1) / align * align
}

// computeStructSizes resolves the memory layout of every struct parsed from a
// shader source. Structs may reference each other as field types; resolution
// retries until it converges, which handles forward references without needing
// a dependency graph.
//
// Parameters:
//   - structs: all struct declarations parsed from the source
//
// Returns:
//   - map[string]wgslTypeLayout: layout keyed by struct name, for every struct that resolved
func computeStructSizes(structs []parsedStruct) map[string]wgslTypeLayout {
	resolved := make(map[string]wgslTypeLayout)

	for range structs {
		progress := false
		for _, ps := range structs {
			if _, done := resolved[ps.name]; done {
				continue
			}
			if layout, ok := computeStructLayout(ps, resolved); ok {
				resolved[ps.name] = layout
				progress = true
			}
		}
		if !progress {
			break
		}
	}

	return resolved
}

// computeStructLayout lays out a single struct using WGSL's standard field
// alignment: each field starts at an offset rounded up to its type's alignment,
// and the struct's total size is rounded up to the largest field alignment.
//
// Parameters:
//   - ps: the struct to lay out
//   - known: layouts of structs already resolved, for struct-typed fields
//
// Returns:
//   - wgslTypeLayout: the struct's size and alignment
//   - bool: false if any field type could not be resolved yet
func computeStructLayout(ps parsedStruct, known map[string]wgslTypeLayout) (wgslTypeLayout, bool) {
	var offset, structAlign uint64

	for _, f := range ps.fields {
		fl, ok := resolveTypeLayout(f.typeName, known)
		if !ok {
			return wgslTypeLayout{}, false
		}
		offset = roundUpAlign(offset, fl.align) + fl.size
		if fl.align > structAlign {
			structAlign = fl.align
		}
	}

	if structAlign == 0 {
		return wgslTypeLayout{}, false
	}

	return wgslTypeLayout{
		size:  roundUpAlign(offset, structAlign),
		align: structAlign,
	}, true
}

// resolveTypeLayout resolves the layout of any WGSL type name: scalars and
// vectors from the fixed table, arrays by element stride, and structs from the
// known set. A runtime-sized array resolves to a single element stride, which
// serves as the minimum binding size for the storage buffer holding it.
//
// Parameters:
//   - typeName: the WGSL type name, e.g. "vec4<f32>" or "array<ModelData>"
//   - known: layouts of already-resolved structs
//
// Returns:
//   - wgslTypeLayout: the resolved layout
//   - bool: false if the type is unknown
func resolveTypeLayout(typeName string, known map[string]wgslTypeLayout) (wgslTypeLayout, bool) {
	typeName = strings.TrimSpace(typeName)

	if l, ok := wgslScalarLayouts[typeName]; ok {
		return l, true
	}

	if m := arrayTypeRegex.FindStringSubmatch(typeName); m != nil {
		elem, ok := resolveTypeLayout(m[1], known)
		if !ok {
			return wgslTypeLayout{}, false
		}
		stride := roundUpAlign(elem.size, elem.align)
		count := uint64(1)
		if m[2] != "" {
			n, err := strconv.ParseUint(m[2], 10, 64)
			if err != nil {
				return wgslTypeLayout{}, false
			}
			count = n
		}
		return wgslTypeLayout{size: stride * count, align: elem.align}, true
	}

	if l, ok := known[typeName]; ok {
		return l, true
	}

	return wgslTypeLayout{}, false
}
