package kquant

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

//go:embed colordata/ansi16.json
//go:embed colordata/primaries8.json
var f embed.FS

// ReadPaletteJSON reads a palette stored as a JSON array of "#rrggbb"
// strings.
func ReadPaletteJSON(r io.Reader) ([]RGB, error) {
	var hexColors []string
	if err := json.NewDecoder(r).Decode(&hexColors); err != nil {
		return nil, fmt.Errorf("error unmarshalling JSON: %w", err)
	}
	palette := make([]RGB, 0, len(hexColors))
	for _, h := range hexColors {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// WritePaletteJSON writes palette as a JSON array of "#rrggbb" strings, in
// cluster order.
func WritePaletteJSON(w io.Writer, palette []RGB) error {
	hexColors := make([]string, len(palette))
	for i, c := range palette {
		hexColors[i] = c.String()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(hexColors); err != nil {
		return fmt.Errorf("error marshalling palette: %w", err)
	}
	return nil
}

// LoadPalette loads a palette by name. Embedded palettes (ansi16,
// primaries8) are tried first, then name is read as a file path.
func LoadPalette(name string) ([]RGB, error) {
	// First, try the VFS.
	data, vfsErr := f.ReadFile(fmt.Sprintf("colordata/%s.json", name))
	if vfsErr == nil {
		return ReadPaletteJSON(bytes.NewReader(data))
	}

	// If the VFS fails, try the filesystem.
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error reading palette: %w", err)
	}
	defer file.Close()
	return ReadPaletteJSON(file)
}

// SavePalette writes palette to path as JSON.
func SavePalette(path string, palette []RGB) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating palette file: %w", err)
	}
	if err := WritePaletteJSON(file, palette); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Distinct returns the distinct colors of palette sorted by packed value.
func Distinct(palette []RGB) []RGB {
	out := slices.Clone(palette)
	slices.SortFunc(out, func(a, b RGB) int {
		return int(a.ToUint32()) - int(b.ToUint32())
	})
	return slices.Compact(out)
}
