package scene

import (
	"fmt"

	"scene-editor/internal/glmath"
)

// Kind selects which static mesh an object is drawn with. It is fixed when the object is created.
type Kind uint8

const (
	Cube Kind = iota
	Sphere
)

// Kinds lists every kind in display order.
var Kinds = []Kind{Cube, Sphere}

func (k Kind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Cube, Sphere:
		return true
	default:
		return false
	}
}

// ParseKind maps "cube" or "sphere" to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q (use cube or sphere)", s)
}

// Field names one of an object's vector attributes.
type Field uint8

const (
	FieldPosition Field = iota
	FieldScale
	FieldRotation
	FieldTranslation
	FieldColor
)

// Fields lists the vector fields in the order the inspector shows them.
var Fields = []Field{FieldPosition, FieldScale, FieldRotation, FieldTranslation, FieldColor}

func (f Field) String() string {
	switch f {
	case FieldPosition:
		return "position"
	case FieldScale:
		return "scale"
	case FieldRotation:
		return "rotation"
	case FieldTranslation:
		return "translation"
	case FieldColor:
		return "color"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}

// ParseField maps a field name such as "rotation" to its Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// Object is one editable primitive in the scene. Rotation holds Euler angles in degrees; Color
// components are conventionally in [0, 1] but are not checked.
//
// Position is kept and persisted but the renderer places objects by Translation.
type Object struct {
	Name        string
	Position    glmath.Vec3
	Color       glmath.Vec3
	Scale       glmath.Vec3
	Rotation    glmath.Vec3
	Translation glmath.Vec3

	kind Kind
}

// NewObject returns an object of the given kind named "new <kind>", blue, unit scale, at the origin.
func NewObject(kind Kind) *Object {
	return &Object{
		Name:  "new " + kind.String(),
		Color: glmath.Vec3{0, 0, 1},
		Scale: glmath.Vec3{1, 1, 1},
		kind:  kind,
	}
}

func (o *Object) Kind() Kind { return o.kind }

// Vector returns the attribute named by f.
func (o *Object) Vector(f Field) glmath.Vec3 {
	switch f {
	case FieldPosition:
		return o.Position
	case FieldScale:
		return o.Scale
	case FieldRotation:
		return o.Rotation
	case FieldTranslation:
		return o.Translation
	case FieldColor:
		return o.Color
	default:
		panic(fmt.Sprintf("scene: unknown field %v", f))
	}
}

// SetVector replaces the attribute named by f.
func (o *Object) SetVector(f Field, v glmath.Vec3) {
	switch f {
	case FieldPosition:
		o.Position = v
	case FieldScale:
		o.Scale = v
	case FieldRotation:
		o.Rotation = v
	case FieldTranslation:
		o.Translation = v
	case FieldColor:
		o.Color = v
	default:
		panic(fmt.Sprintf("scene: unknown field %v", f))
	}
}

func (o *Object) String() string {
	return fmt.Sprintf("%s (%s) t=%v r=%v s=%v c=%v", o.Name, o.kind, o.Translation, o.Rotation, o.Scale, o.Color)
}
