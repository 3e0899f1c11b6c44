package render

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/glmath"
	"scene-editor/internal/primitives"
	"scene-editor/internal/scene"
)

// Light and material colors shared by every object.
var (
	lightPosition = [3]float32{0, 10, 4}
	ambientColor  = [3]float32{0.1, 0.1, 0.1}
	diffuseColor  = [3]float32{0.82, 0.81, 0.8}
	specularColor = [3]float32{0.6, 0.61, 0.62}
)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(32.0)

// gpuMesh keeps the CPU buffers alive for as long as raylib references them.
type gpuMesh struct {
	mesh     rl.Mesh
	vertices []float32
	normals  []float32
	indices  []uint16
}

// Renderer draws composed frames with raylib. GPU resources are created on the first Draw so they
// are allocated after the window/OpenGL context exists.
type Renderer struct {
	registry    *primitives.Registry
	gridVisible bool

	loaded  bool
	meshes  map[scene.Kind]*gpuMesh
	mtl     rl.Material
	shader  rl.Shader
	locs    shaderLocs
	lastErr error
}

type shaderLocs struct {
	normalModel   int32
	viewPos       int32
	lightPos      int32
	ambient       int32
	diffuse       int32
	specular      int32
	specularPower int32
}

// NewRenderer returns a renderer drawing the meshes in registry. The grid is visible by default.
func NewRenderer(registry *primitives.Registry) *Renderer {
	return &Renderer{
		registry:    registry,
		gridVisible: true,
		meshes:      make(map[scene.Kind]*gpuMesh),
	}
}

// SetGridVisible sets whether the editor grid is drawn.
func (r *Renderer) SetGridVisible(visible bool) {
	r.gridVisible = visible
}

func (r *Renderer) GridVisible() bool {
	return r.gridVisible
}

// Err returns the last GPU setup error, if any. Objects of a kind whose mesh failed to upload are
// skipped.
func (r *Renderer) Err() error {
	return r.lastErr
}

func (r *Renderer) ensureLoaded() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		r.shader = shader
		r.mtl.Shader = shader
		r.locs = shaderLocs{
			normalModel:   rl.GetShaderLocation(shader, "normalModel"),
			viewPos:       rl.GetShaderLocation(shader, "viewPos"),
			lightPos:      rl.GetShaderLocation(shader, "lightPosition"),
			ambient:       rl.GetShaderLocation(shader, "ambientColor"),
			diffuse:       rl.GetShaderLocation(shader, "diffuseColor"),
			specular:      rl.GetShaderLocation(shader, "specularColor"),
			specularPower: rl.GetShaderLocation(shader, "specularPower"),
		}
	} else {
		r.lastErr = fmt.Errorf("render: lit shader failed to compile, using raylib default")
	}
	for _, kind := range scene.Kinds {
		m, err := upload(r.registry.Mesh(kind))
		if err != nil {
			r.lastErr = fmt.Errorf("render: %s: %w", kind, err)
			continue
		}
		r.meshes[kind] = m
	}
}

// upload copies a static mesh into raylib's layout (16-bit indices) and sends it to the GPU.
func upload(src *primitives.Mesh) (*gpuMesh, error) {
	if src.VertexCount() == 0 || src.TriangleCount() == 0 {
		return nil, primitives.ErrEmptyMesh
	}
	if src.VertexCount() > 1<<16 {
		return nil, fmt.Errorf("%d vertices exceed 16-bit indices", src.VertexCount())
	}
	g := &gpuMesh{
		vertices: append([]float32(nil), src.Vertices...),
		normals:  append([]float32(nil), src.Normals...),
		indices:  make([]uint16, len(src.Indices)),
	}
	for i, idx := range src.Indices {
		g.indices[i] = uint16(idx)
	}
	g.mesh.VertexCount = int32(src.VertexCount())
	g.mesh.TriangleCount = int32(src.TriangleCount())
	g.mesh.Vertices = &g.vertices[0]
	if len(g.normals) > 0 {
		g.mesh.Normals = &g.normals[0]
	}
	g.mesh.Indices = &g.indices[0]
	rl.UploadMesh(&g.mesh, false)
	return g, nil
}

// Draw submits f. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(f Frame) {
	r.ensureLoaded()

	rl.BeginMode3D(rl.Camera3D{
		Position:   rl.NewVector3(f.Camera[0], f.Camera[1], f.Camera[2]),
		Target:     rl.NewVector3(f.Camera[0], f.Camera[1], f.Camera[2]-1),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       FieldOfView * glmath.RadToDeg,
		Projection: rl.CameraPerspective,
	})
	// the composed matrices replace the ones BeginMode3D derived from the camera
	rl.SetMatrixProjection(toRL(&f.Projection))
	rl.SetMatrixModelview(toRL(&f.View))

	r.setFrameUniforms(f.Camera)
	for i := range f.Calls {
		call := &f.Calls[i]
		m, ok := r.meshes[call.Kind]
		if !ok {
			continue
		}
		r.setCallUniforms(call)
		if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = toColor(call.Color)
		}
		rl.DrawMesh(m.mesh, r.mtl, toRL(&call.Model))
	}
	if r.gridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()
}

func (r *Renderer) setFrameUniforms(camera glmath.Vec3) {
	if !rl.IsShaderValid(r.shader) {
		return
	}
	// cgo-safe: local arrays
	viewPos := [3]float32{camera[0], camera[1], camera[2]}
	light := lightPosition
	amb := ambientColor
	diff := diffuseColor
	spec := specularColor
	setVec3(r.shader, r.locs.viewPos, viewPos[:])
	setVec3(r.shader, r.locs.lightPos, light[:])
	setVec3(r.shader, r.locs.ambient, amb[:])
	setVec3(r.shader, r.locs.diffuse, diff[:])
	setVec3(r.shader, r.locs.specular, spec[:])
	if r.locs.specularPower >= 0 {
		rl.SetShaderValue(r.shader, r.locs.specularPower, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
}

func (r *Renderer) setCallUniforms(call *DrawCall) {
	if !rl.IsShaderValid(r.shader) || r.locs.normalModel < 0 {
		return
	}
	n := call.NormalModel
	// mat3 padded into a mat4; the shader reads mat3(normalModel)
	padded := glmath.Mat4{
		n[0], n[1], n[2], 0,
		n[3], n[4], n[5], 0,
		n[6], n[7], n[8], 0,
		0, 0, 0, 1,
	}
	rl.SetShaderValueMatrix(r.shader, r.locs.normalModel, toRL(&padded))
}

func setVec3(shader rl.Shader, loc int32, v []float32) {
	if loc >= 0 {
		rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
	}
}

// Unload frees GPU resources. Call before the window closes.
func (r *Renderer) Unload() {
	if !r.loaded {
		return
	}
	for kind, m := range r.meshes {
		rl.UnloadMesh(&m.mesh)
		delete(r.meshes, kind)
	}
	if rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}

func toRL(m *glmath.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toColor(c glmath.Vec3) rl.Color {
	return rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), 255)
}

// channel maps a [0,1] component to a byte, clamping out-of-range values.
func channel(v float32) uint8 {
	switch {
	case v <= 0 || math32.IsNaN(v):
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
