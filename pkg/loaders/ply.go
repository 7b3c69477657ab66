// Package loaders reads external mesh assets into the geometry package's
// triangle primitives. It knows nothing about the wavefront engine; a
// TriangleMesh built here is just another Shape a Scene can add.
package loaders

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wavefront-rt/tracer/pkg/core"
)

// PLYHeader is the parsed header of a binary_little_endian PLY file.
type PLYHeader struct {
	Format      string
	Version     string
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty

	HasNormals bool
	HasColors  bool

	NormalIndices [3]int
	ColorIndices  [3]int
}

// PLYProperty is a single property definition from a PLY header.
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string
	DataType string
}

// PLYData is the raw vertex/face data loaded from a PLY file, trimmed to
// the properties a triangle mesh actually needs: positions, faces,
// per-vertex normals, and per-vertex colors.
type PLYData struct {
	Vertices []core.Vec3
	Faces    []int
	Normals  []core.Vec3
	Colors   []core.Vec3
}

// LoadPLY loads a PLY file and returns its raw vertex and face data. Only
// the binary_little_endian format is supported, and only triangular faces.
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	header, headerSize, err := parsePLYHeader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	if _, err := file.Seek(int64(headerSize), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to binary data: %w", err)
	}

	if header.Format != "binary_little_endian" {
		return nil, fmt.Errorf("unsupported PLY format: %s (only binary_little_endian is supported)", header.Format)
	}

	data, err := readBinaryLittleEndian(file, header)
	if err != nil {
		return nil, fmt.Errorf("failed to read PLY data: %w", err)
	}

	return data, nil
}

// parsePLYHeader parses the ASCII header common to every PLY format and
// returns the byte offset where the (binary) payload starts.
func parsePLYHeader(file *os.File) (*PLYHeader, int, error) {
	header := &PLYHeader{}

	scanner := bufio.NewScanner(file)
	var bytesRead int
	var currentElement string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		bytesRead += len(scanner.Bytes()) + 1

		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "element":
			if len(parts) >= 3 {
				count, err := strconv.Atoi(parts[2])
				if err != nil {
					return nil, 0, fmt.Errorf("invalid element count: %s", parts[2])
				}
				currentElement = parts[1]
				switch currentElement {
				case "vertex":
					header.VertexCount = count
				case "face":
					header.FaceCount = count
				}
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, 0, fmt.Errorf("failed to parse property: %w", err)
			}

			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
				propIndex := len(header.VertexProps) - 1
				switch prop.Name {
				case "nx":
					header.HasNormals = true
					header.NormalIndices[0] = propIndex
				case "ny":
					header.HasNormals = true
					header.NormalIndices[1] = propIndex
				case "nz":
					header.HasNormals = true
					header.NormalIndices[2] = propIndex
				case "red", "r":
					header.HasColors = true
					header.ColorIndices[0] = propIndex
				case "green", "g":
					header.HasColors = true
					header.ColorIndices[1] = propIndex
				case "blue", "b":
					header.HasColors = true
					header.ColorIndices[2] = propIndex
				}
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading header: %w", err)
	}

	return header, bytesRead, nil
}

// parsePLYProperty parses a single "property ..." header line.
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}
	return prop, nil
}

// vertexFields holds the subset of a parsed vertex this loader keeps.
type vertexFields struct {
	X, Y, Z    float32
	NX, NY, NZ float32
	R, G, B    uint8
}

// readBinaryLittleEndian reads the vertex and face payload following the
// header, in bulk where possible to avoid a syscall per field.
func readBinaryLittleEndian(file *os.File, header *PLYHeader) (*PLYData, error) {
	vertices := make([]core.Vec3, 0, header.VertexCount)
	faces := make([]int, 0, header.FaceCount*3)

	var normals []core.Vec3
	var colors []core.Vec3
	if header.HasNormals {
		normals = make([]core.Vec3, 0, header.VertexCount)
	}
	if header.HasColors {
		colors = make([]core.Vec3, 0, header.VertexCount)
	}

	vertexSize := calculateVertexSize(header.VertexProps)
	vertexData := make([]byte, vertexSize*header.VertexCount)
	if _, err := io.ReadFull(file, vertexData); err != nil {
		return nil, fmt.Errorf("failed to read vertex data: %w", err)
	}

	for i := 0; i < header.VertexCount; i++ {
		offset := i * vertexSize
		v := parseVertexFromBytes(vertexData[offset:offset+vertexSize], header.VertexProps)

		vertices = append(vertices, core.NewVec3(float64(v.X), float64(v.Y), float64(v.Z)))
		if header.HasNormals {
			normals = append(normals, core.NewVec3(float64(v.NX), float64(v.NY), float64(v.NZ)))
		}
		if header.HasColors {
			colors = append(colors, core.NewVec3(float64(v.R)/255.0, float64(v.G)/255.0, float64(v.B)/255.0))
		}
	}

	bufReader := bufio.NewReaderSize(file, 1<<20)
	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if prop.IsList && prop.Name == "vertex_indices" {
				indices, err := readFaceIndices(bufReader, prop)
				if err != nil {
					return nil, fmt.Errorf("failed to read face %d: %w", i, err)
				}
				faces = append(faces, indices[0], indices[1], indices[2])
			} else if err := skipProperty(bufReader, prop); err != nil {
				return nil, fmt.Errorf("failed to skip face property %s at face %d: %w", prop.Name, i, err)
			}
		}
	}

	return &PLYData{Vertices: vertices, Faces: faces, Normals: normals, Colors: colors}, nil
}

// readFaceIndices reads one "list <count-type> <index-type> vertex_indices"
// entry, rejecting anything but a triangular face.
func readFaceIndices(r *bufio.Reader, prop PLYProperty) ([3]int, error) {
	var vertexCount int
	switch prop.ListType {
	case "uchar", "uint8":
		var count uint8
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return [3]int{}, err
		}
		vertexCount = int(count)
	case "int", "int32":
		var count int32
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return [3]int{}, err
		}
		vertexCount = int(count)
	default:
		return [3]int{}, fmt.Errorf("unsupported list count type: %s", prop.ListType)
	}

	if vertexCount != 3 {
		return [3]int{}, fmt.Errorf("only triangular faces are supported, got %d vertices", vertexCount)
	}

	var indices [3]int
	switch prop.DataType {
	case "int", "int32":
		var buf [3]int32
		if err := binary.Read(r, binary.LittleEndian, &buf); err != nil {
			return [3]int{}, err
		}
		indices = [3]int{int(buf[0]), int(buf[1]), int(buf[2])}
	case "uint", "uint32":
		var buf [3]uint32
		if err := binary.Read(r, binary.LittleEndian, &buf); err != nil {
			return [3]int{}, err
		}
		indices = [3]int{int(buf[0]), int(buf[1]), int(buf[2])}
	default:
		return [3]int{}, fmt.Errorf("unsupported face index data type: %s", prop.DataType)
	}

	return indices, nil
}

// skipProperty advances past a face property this loader doesn't keep
// (e.g. per-face material indices or colors).
func skipProperty(r *bufio.Reader, prop PLYProperty) error {
	if !prop.IsList {
		return skipSimpleType(r, prop.Type)
	}

	var count uint8
	switch prop.ListType {
	case "uchar", "uint8":
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported list count type: %s", prop.ListType)
	}
	for i := 0; i < int(count); i++ {
		if err := skipSimpleType(r, prop.DataType); err != nil {
			return err
		}
	}
	return nil
}

func skipSimpleType(r *bufio.Reader, dataType string) error {
	var dummy interface{}
	switch dataType {
	case "float", "float32":
		dummy = new(float32)
	case "double", "float64":
		dummy = new(float64)
	case "int", "int32":
		dummy = new(int32)
	case "uint", "uint32":
		dummy = new(uint32)
	case "short", "int16":
		dummy = new(int16)
	case "ushort", "uint16":
		dummy = new(uint16)
	case "char", "int8":
		dummy = new(int8)
	case "uchar", "uint8":
		dummy = new(uint8)
	default:
		return fmt.Errorf("unsupported data type: %s", dataType)
	}
	return binary.Read(r, binary.LittleEndian, dummy)
}

// calculateVertexSize returns the fixed per-vertex byte size implied by
// props (list properties, which have no fixed size, are never valid on a
// vertex element and are ignored).
func calculateVertexSize(props []PLYProperty) int {
	size := 0
	for _, prop := range props {
		if prop.IsList {
			continue
		}
		size += getTypeSize(prop.Type)
	}
	return size
}

func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 4
	}
}

// parseVertexFromBytes extracts the subset of vertex fields this loader
// tracks out of one vertex's raw bytes.
func parseVertexFromBytes(data []byte, props []PLYProperty) vertexFields {
	var v vertexFields
	offset := 0

	for _, prop := range props {
		if prop.IsList {
			continue
		}
		size := getTypeSize(prop.Type)
		if offset+size > len(data) {
			break
		}
		buf := bytes.NewReader(data[offset : offset+size])

		switch prop.Type {
		case "float", "float32":
			var value float32
			if binary.Read(buf, binary.LittleEndian, &value) == nil {
				switch prop.Name {
				case "x":
					v.X = value
				case "y":
					v.Y = value
				case "z":
					v.Z = value
				case "nx":
					v.NX = value
				case "ny":
					v.NY = value
				case "nz":
					v.NZ = value
				}
			}
		case "uchar", "uint8":
			var value uint8
			if binary.Read(buf, binary.LittleEndian, &value) == nil {
				switch prop.Name {
				case "red", "r":
					v.R = value
				case "green", "g":
					v.G = value
				case "blue", "b":
					v.B = value
				}
			}
		}

		offset += size
	}

	return v
}
