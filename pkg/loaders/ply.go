package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/geometry"
)

// maxFaceIndices bounds a face's vertex count so a corrupt binary list
// count cannot drive an unbounded allocation
const maxFaceIndices = 256

// plyProperty is one property declaration of a PLY element
type plyProperty struct {
	name     string
	typ      string
	isList   bool
	listType string // type of the list count
	dataType string // type of the list entries
}

// plyHeader is the parsed PLY header
type plyHeader struct {
	format      string // "ascii" or "binary_little_endian"
	vertexCount int
	faceCount   int
	vertexProps []plyProperty
	faceProps   []plyProperty
}

// LoadPLY reads a PLY mesh file and returns a triangle mesh. Vertex
// positions and face indices are used; other vertex properties are
// parsed past and ignored. Faces with more than three vertices are
// fan-triangulated. Supports ascii and binary_little_endian formats.
func LoadPLY(filename string) (*geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open PLY file: %w", err)
	}
	defer file.Close()

	return ReadPLY(file)
}

// ReadPLY parses PLY data from a reader
func ReadPLY(r io.Reader) (*geometry.Mesh, error) {
	br := bufio.NewReader(r)

	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, fmt.Errorf("parse PLY header: %w", err)
	}

	var vertices []core.Vec3
	var faces [][3]int

	switch header.format {
	case "ascii":
		vertices, faces, err = readPLYAscii(br, header)
	case "binary_little_endian":
		vertices, faces, err = readPLYBinary(br, header)
	default:
		return nil, fmt.Errorf("unsupported PLY format %q", header.format)
	}
	if err != nil {
		return nil, fmt.Errorf("read PLY data: %w", err)
	}

	return geometry.NewMesh(vertices, faces)
}

func parsePLYHeader(br *bufio.Reader) (*plyHeader, error) {
	magic, err := br.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic, got %q", strings.TrimSpace(magic))
	}

	header := &plyHeader{}
	currentElement := ""

	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended prematurely: %w", err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "end_header":
			if header.format == "" {
				return nil, fmt.Errorf("header has no format declaration")
			}
			return header, nil
		case "comment", "obj_info":
			// skip
		case "format":
			if len(fields) < 2 {
				return nil, fmt.Errorf("malformed format line %q", strings.TrimSpace(line))
			}
			header.format = fields[1]
		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed element line %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("element count: %w", err)
			}
			currentElement = fields[1]
			switch currentElement {
			case "vertex":
				header.vertexCount = count
			case "face":
				header.faceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(fields)
			if err != nil {
				return nil, err
			}
			switch currentElement {
			case "vertex":
				header.vertexProps = append(header.vertexProps, prop)
			case "face":
				header.faceProps = append(header.faceProps, prop)
			}
		}
	}
}

func parsePLYProperty(fields []string) (plyProperty, error) {
	if len(fields) >= 5 && fields[1] == "list" {
		return plyProperty{
			name:     fields[4],
			isList:   true,
			listType: fields[2],
			dataType: fields[3],
		}, nil
	}
	if len(fields) >= 3 {
		return plyProperty{name: fields[2], typ: fields[1]}, nil
	}
	return plyProperty{}, fmt.Errorf("malformed property line %v", fields)
}

// propIndex returns the position of a named property, or -1
func propIndex(props []plyProperty, name string) int {
	for i, p := range props {
		if p.name == name {
			return i
		}
	}
	return -1
}

func readPLYAscii(br *bufio.Reader, header *plyHeader) ([]core.Vec3, [][3]int, error) {
	xi := propIndex(header.vertexProps, "x")
	yi := propIndex(header.vertexProps, "y")
	zi := propIndex(header.vertexProps, "z")
	if xi < 0 || yi < 0 || zi < 0 {
		return nil, nil, fmt.Errorf("vertex element lacks x/y/z properties")
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	vertices := make([]core.Vec3, 0, header.vertexCount)
	for i := 0; i < header.vertexCount; i++ {
		fields, err := nextFields(scanner)
		if err != nil {
			return nil, nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		if len(fields) < len(header.vertexProps) {
			return nil, nil, fmt.Errorf("vertex %d has %d values, want %d", i, len(fields), len(header.vertexProps))
		}
		x, err1 := strconv.ParseFloat(fields[xi], 64)
		y, err2 := strconv.ParseFloat(fields[yi], 64)
		z, err3 := strconv.ParseFloat(fields[zi], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, nil, fmt.Errorf("vertex %d has non-numeric coordinates", i)
		}
		vertices = append(vertices, core.NewVec3(x, y, z))
	}

	faces := make([][3]int, 0, header.faceCount)
	for i := 0; i < header.faceCount; i++ {
		fields, err := nextFields(scanner)
		if err != nil {
			return nil, nil, fmt.Errorf("face %d: %w", i, err)
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil || count < 0 || len(fields) < count+1 {
			return nil, nil, fmt.Errorf("face %d has a malformed index list", i)
		}
		indices := make([]int, count)
		for j := 0; j < count; j++ {
			indices[j], err = strconv.Atoi(fields[j+1])
			if err != nil {
				return nil, nil, fmt.Errorf("face %d index %d: %w", i, j, err)
			}
		}
		faces = appendTriangulated(faces, indices)
	}

	return vertices, faces, nil
}

func nextFields(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

func readPLYBinary(br *bufio.Reader, header *plyHeader) ([]core.Vec3, [][3]int, error) {
	xi := propIndex(header.vertexProps, "x")
	if xi < 0 || propIndex(header.vertexProps, "y") != xi+1 || propIndex(header.vertexProps, "z") != xi+2 {
		return nil, nil, fmt.Errorf("vertex element lacks contiguous x/y/z properties")
	}

	vertices := make([]core.Vec3, 0, header.vertexCount)
	for i := 0; i < header.vertexCount; i++ {
		var coords [3]float64
		for p, prop := range header.vertexProps {
			v, err := readPLYScalar(br, prop.typ)
			if err != nil {
				return nil, nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			if p >= xi && p < xi+3 {
				coords[p-xi] = v
			}
		}
		vertices = append(vertices, core.NewVec3(coords[0], coords[1], coords[2]))
	}

	faces := make([][3]int, 0, header.faceCount)
	for i := 0; i < header.faceCount; i++ {
		for _, prop := range header.faceProps {
			if !prop.isList {
				if _, err := readPLYScalar(br, prop.typ); err != nil {
					return nil, nil, fmt.Errorf("face %d: %w", i, err)
				}
				continue
			}
			countF, err := readPLYScalar(br, prop.listType)
			if err != nil {
				return nil, nil, fmt.Errorf("face %d count: %w", i, err)
			}
			count := int(countF)
			if count < 0 || count > maxFaceIndices {
				return nil, nil, fmt.Errorf("face %d has an invalid index count %d", i, count)
			}
			indices := make([]int, count)
			for j := 0; j < count; j++ {
				idxF, err := readPLYScalar(br, prop.dataType)
				if err != nil {
					return nil, nil, fmt.Errorf("face %d index %d: %w", i, j, err)
				}
				indices[j] = int(idxF)
			}
			if prop.name == "vertex_indices" || prop.name == "vertex_index" {
				faces = appendTriangulated(faces, indices)
			}
		}
	}

	return vertices, faces, nil
}

// readPLYScalar reads one little-endian scalar of the given PLY type
func readPLYScalar(br *bufio.Reader, typ string) (float64, error) {
	size, ok := plyTypeSizes[typ]
	if !ok {
		return 0, fmt.Errorf("unknown PLY type %q", typ)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(br, buf); err != nil {
		return 0, err
	}

	switch typ {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(binary.LittleEndian.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(binary.LittleEndian.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(binary.LittleEndian.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(binary.LittleEndian.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf))), nil
	case "double", "float64":
		return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
	}
	return 0, fmt.Errorf("unknown PLY type %q", typ)
}

var plyTypeSizes = map[string]int{
	"char": 1, "int8": 1, "uchar": 1, "uint8": 1,
	"short": 2, "int16": 2, "ushort": 2, "uint16": 2,
	"int": 4, "int32": 4, "uint": 4, "uint32": 4,
	"float": 4, "float32": 4, "double": 8, "float64": 8,
}

// appendTriangulated fan-triangulates a polygon's index list
func appendTriangulated(faces [][3]int, indices []int) [][3]int {
	for j := 1; j+1 < len(indices); j++ {
		faces = append(faces, [3]int{indices[0], indices[j], indices[j+1]})
	}
	return faces
}
