package primitives

// PrimitiveDef is the YAML definition for a primitive kind (assets/primitives/<kind>.yaml).
// Mesh, when set, is an OBJ file relative to the assets directory; otherwise the mesh is built in
// code. Color, when set, is the color new objects of this kind start with.
type PrimitiveDef struct {
	Type   string      `yaml:"type"`
	Mesh   string      `yaml:"mesh,omitempty"`
	Color  *[3]float32 `yaml:"color,omitempty"`
	Rings  int         `yaml:"rings,omitempty"`
	Slices int         `yaml:"slices,omitempty"`
}
