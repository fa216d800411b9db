package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Write saves a model to disk. Files with a .stl extension are written in
// binary format unless ascii is true.
func Write(model *Model, filename string, ascii bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if ascii {
		return WriteASCII(file, model)
	}
	return WriteBinary(file, model)
}

// WriteASCII writes a model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	name := sanitizeName(model.Name)
	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid header: %w", err)
	}

	for _, tri := range model.Triangles {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", tri.Normal.X, tri.Normal.Y, tri.Normal.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		fmt.Fprintf(bw, "      vertex %g %g %g\n", tri.V1.X, tri.V1.Y, tri.V1.Z)
		fmt.Fprintf(bw, "      vertex %g %g %g\n", tri.V2.X, tri.V2.Y, tri.V2.Z)
		fmt.Fprintf(bw, "      vertex %g %g %g\n", tri.V3.X, tri.V3.Y, tri.V3.Z)
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}

	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid footer: %w", err)
	}

	return bw.Flush()
}

// WriteBinary writes a model in binary STL format
func WriteBinary(w io.Writer, model *Model) error {
	// 80-byte header carrying the model name, zero padded
	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	count := uint32(len(model.Triangles))
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	var buf bytes.Buffer
	for i, tri := range model.Triangles {
		buf.Reset()

		vecs := [4][3]float32{
			{float32(tri.Normal.X), float32(tri.Normal.Y), float32(tri.Normal.Z)},
			{float32(tri.V1.X), float32(tri.V1.Y), float32(tri.V1.Z)},
			{float32(tri.V2.X), float32(tri.V2.Y), float32(tri.V2.Z)},
			{float32(tri.V3.X), float32(tri.V3.Y), float32(tri.V3.Z)},
		}
		for _, v := range vecs {
			if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("failed to encode triangle %d: %w", i, err)
			}
		}
		var attributeByteCount uint16
		if err := binary.Write(&buf, binary.LittleEndian, attributeByteCount); err != nil {
			return fmt.Errorf("failed to encode triangle %d: %w", i, err)
		}

		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return nil
}

// sanitizeName makes a model name safe for the ASCII solid/endsolid line
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "model"
	}
	return strings.Join(strings.Fields(name), "_")
}

// DeriveOutputName returns a default output filename for a deformed model,
// e.g. part.stl -> part.deformed.stl
func DeriveOutputName(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".stl"
	}
	return base + ".deformed" + ext
}
