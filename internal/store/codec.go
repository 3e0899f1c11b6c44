package store

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/jinzhu/copier"

	"scene-editor/internal/glmath"
	"scene-editor/internal/scene"
)

// Cache file layout, little-endian:
//
//	magic   "SCNC"
//	version uint16
//	count   uint32
//	count records of:
//	  name        uint16 byte length + UTF-8 bytes
//	  kind        uint8 (0 cube, 1 sphere)
//	  position    3 x float32
//	  scale       3 x float32
//	  rotation    3 x float32
//	  translation 3 x float32
//	  color       3 x float32
const (
	Magic   = "SCNC"
	Version = 1

	maxNameLen = math.MaxUint16
	// maxRecords bounds allocation when decoding a corrupt count.
	maxRecords = 1 << 20
)

var (
	ErrBadMagic   = errors.New("not a scene cache file")
	ErrBadVersion = errors.New("unsupported scene cache version")
)

// Encode writes objs as one whole-list snapshot.
func Encode(w io.Writer, objs []*scene.Object) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Magic); err != nil {
		return err
	}
	var buf [4]byte
	binary.LittleEndian.PutUint16(buf[:2], Version)
	bw.Write(buf[:2])
	binary.LittleEndian.PutUint32(buf[:], uint32(len(objs)))
	bw.Write(buf[:])

	for i, o := range objs {
		if len(o.Name) > maxNameLen {
			return fmt.Errorf("object %d: name is %d bytes, limit %d", i, len(o.Name), maxNameLen)
		}
		binary.LittleEndian.PutUint16(buf[:2], uint16(len(o.Name)))
		bw.Write(buf[:2])
		bw.WriteString(o.Name)
		bw.WriteByte(byte(o.Kind()))
		for _, v := range [...]glmath.Vec3{o.Position, o.Scale, o.Rotation, o.Translation, o.Color} {
			for _, f := range v {
				binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
				bw.Write(buf[:])
			}
		}
	}
	// bufio.Writer keeps the first write error and reports it here
	return bw.Flush()
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader) ([]*scene.Object, error) {
	br := bufio.NewReader(r)
	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("header: %w", unexpected(err))
	}
	if string(magic[:]) != Magic {
		return nil, ErrBadMagic
	}
	var header struct {
		Version uint16
		Count   uint32
	}
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("header: %w", unexpected(err))
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, header.Version)
	}
	if header.Count > maxRecords {
		return nil, fmt.Errorf("record count %d exceeds limit %d", header.Count, maxRecords)
	}

	objs := make([]*scene.Object, 0, header.Count)
	for i := uint32(0); i < header.Count; i++ {
		o, err := decodeRecord(br)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		objs = append(objs, o)
	}
	return objs, nil
}

type fixedRecord struct {
	Kind                                         uint8
	Position, Scale, Rotation, Translation, Color [3]float32
}

func decodeRecord(r io.Reader) (*scene.Object, error) {
	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, unexpected(err)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, unexpected(err)
	}
	if !utf8.Valid(name) {
		return nil, errors.New("name is not valid UTF-8")
	}
	var rec fixedRecord
	if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
		return nil, unexpected(err)
	}
	kind := scene.Kind(rec.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown kind %d", rec.Kind)
	}
	obj := scene.NewObject(kind)
	obj.Name = string(name)
	// Kind has no exported counterpart on Object and is skipped.
	if err := copier.Copy(obj, &rec); err != nil {
		return nil, fmt.Errorf("record %q: %w", name, err)
	}
	return obj, nil
}

// unexpected turns a clean EOF in the middle of the data into io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
