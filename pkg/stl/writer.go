package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	headerSize = 80
	facetSize  = 50
)

// WriteBinary encodes the model as binary STL.
// Facet normals are recomputed from the winding order when missing.
func WriteBinary(w io.Writer, model *Model) error {
	if uint64(len(model.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles: %d", len(model.Triangles))
	}

	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	copy(header, model.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		normal := triangle.Normal
		if normal.Length() == 0 {
			normal = triangle.CalculateNormal()
		}
		facet := binaryFacet{
			Normal: normal.Float32(),
			V1:     triangle.V1.Float32(),
			V2:     triangle.V2.Float32(),
			V3:     triangle.V3.Float32(),
		}
		if err := binary.Write(bw, binary.LittleEndian, &facet); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the model to path as binary STL, replacing any existing file
func WriteFile(path string, model *Model) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteBinary(file, model); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
