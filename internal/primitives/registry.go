package primitives

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"scene-editor/internal/glmath"
	"scene-editor/internal/scene"
)

// DefsDir is where primitive definitions live, relative to the assets directory.
const DefsDir = "primitives"

type entry struct {
	mesh     *Mesh
	color    glmath.Vec3
	hasColor bool
}

// Registry maps each scene.Kind to its static mesh. It is built once at startup and is read-only
// afterwards, so one Registry can be shared by every object of a kind.
type Registry struct {
	cube   entry
	sphere entry
}

// Builtin returns a registry with the built-in cube and a generated sphere; it never touches disk.
func Builtin() *Registry {
	return &Registry{
		cube:   entry{mesh: CubeMesh()},
		sphere: entry{mesh: SphereMesh(defaultSphereRings, defaultSphereSlices)},
	}
}

// Load builds a registry from the definitions under assetsDir/primitives. Every kind always gets a
// mesh: a missing or broken definition or OBJ file falls back to the built-in mesh, and the
// problems are returned joined in err for the caller to log.
func Load(assetsDir string) (*Registry, error) {
	r := Builtin()
	var errs []error
	for _, kind := range scene.Kinds {
		def, err := readDef(filepath.Join(assetsDir, DefsDir, kind.String()+".yaml"))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		if def.Type != "" && def.Type != kind.String() {
			errs = append(errs, fmt.Errorf("primitives: %s.yaml declares type %q", kind, def.Type))
			continue
		}
		e := r.entry(kind)
		if def.Color != nil {
			e.color, e.hasColor = glmath.Vec3(*def.Color), true
		}
		switch {
		case def.Mesh != "":
			m, err := readOBJ(filepath.Join(assetsDir, def.Mesh))
			if err != nil {
				errs = append(errs, err)
			} else {
				e.mesh = m
			}
		case kind == scene.Sphere && (def.Rings > 0 || def.Slices > 0):
			e.mesh = SphereMesh(def.Rings, def.Slices)
		}
		r.set(kind, e)
	}
	return r, errors.Join(errs...)
}

func readDef(path string) (PrimitiveDef, error) {
	var def PrimitiveDef
	data, err := os.ReadFile(path)
	if err != nil {
		return def, err
	}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("primitives: %s: %w", path, err)
	}
	return def, nil
}

func readOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("primitives: %w", err)
	}
	defer f.Close()
	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("primitives: %s: %w", path, err)
	}
	return m, nil
}

func (r *Registry) entry(kind scene.Kind) entry {
	switch kind {
	case scene.Cube:
		return r.cube
	case scene.Sphere:
		return r.sphere
	default:
		panic(fmt.Sprintf("primitives: unknown kind %v", kind))
	}
}

func (r *Registry) set(kind scene.Kind, e entry) {
	switch kind {
	case scene.Cube:
		r.cube = e
	case scene.Sphere:
		r.sphere = e
	default:
		panic(fmt.Sprintf("primitives: unknown kind %v", kind))
	}
}

// Mesh returns the shared mesh for kind.
func (r *Registry) Mesh(kind scene.Kind) *Mesh {
	return r.entry(kind).mesh
}

// DefaultColor returns the configured starting color for kind, if its definition sets one.
func (r *Registry) DefaultColor(kind scene.Kind) (glmath.Vec3, bool) {
	e := r.entry(kind)
	return e.color, e.hasColor
}
