package primitives

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseOBJ reads the subset of Wavefront OBJ used for the sphere asset: "v x y z" lines add a vertex
// and "f a b c" lines add a triangle by one-based vertex index. Face tokens like "3/1/2" use their
// leading index. Other line types and blank lines are skipped. Normals are generated after parsing.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates", lineNo)
			}
			for _, s := range fields[1:4] {
				f, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				m.Vertices = append(m.Vertices, float32(f))
			}
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs 3 indices", lineNo)
			}
			for _, s := range fields[1:4] {
				if slash := strings.IndexByte(s, '/'); slash >= 0 {
					s = s[:slash]
				}
				idx, err := strconv.ParseUint(s, 10, 32)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				if idx == 0 {
					return nil, fmt.Errorf("obj line %d: face indices are one-based", lineNo)
				}
				m.Indices = append(m.Indices, uint32(idx-1))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	GenerateNormals(m)
	return m, nil
}
