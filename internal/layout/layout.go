// Package layout reads sparse sticker layouts from TOML, YAML or JSON and
// applies them to a cube.
//
// A layout is a flat table of sticker keys to colors:
//
//	U1 = "white"
//	F5 = "r"
//	B9 = 5
//
// A key is a face letter (F U L D R B) followed by a 1-based, row-major
// sticker index in [1, N²]. Values are color names, first letters or
// numeric color ids.
package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/nxcube"
)

// Format is a layout file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions with no decoder.
var ErrUnknownFormat = errors.New("layout: unknown format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Layout is the raw key/value table of a layout file.
type Layout map[string]string

// Decode parses data in the given format. Values of any scalar type are
// kept in their string form so that they can be reported verbatim.
func Decode(data []byte, format Format) (Layout, error) {
	raw := make(map[string]any)
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s layout: %w", format, err)
	}

	layout := make(Layout, len(raw))
	for k, v := range raw {
		layout[k] = stringify(v)
	}
	return layout, nil
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ReadFile reads and decodes a layout file, choosing the format by extension.
func ReadFile(path string) (Layout, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return Decode(data, format)
}

// ParseKey maps a key such as "R7" to a sticker position on an n×n×n cube.
// The face letter must be upper case and the index is plain decimal digits
// with no sign or leading zeros.
func ParseKey(n int, key string) (nxcube.Position, error) {
	if len(key) < 2 {
		return nxcube.Position{}, nxcube.ErrUnrecognizedPosition
	}
	face, ok := nxcube.ParseFace(key[0])
	if !ok {
		return nxcube.Position{}, nxcube.ErrUnrecognizedPosition
	}
	digits := key[1:]
	if digits[0] == '0' {
		return nxcube.Position{}, nxcube.ErrUnrecognizedPosition
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nxcube.Position{}, nxcube.ErrUnrecognizedPosition
		}
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 1 || idx > n*n {
		return nxcube.Position{}, nxcube.ErrUnrecognizedPosition
	}
	idx--
	return nxcube.Position{Face: face, Row: idx / n, Col: idx % n}, nil
}

// Resolve turns a layout into sticker assignments for an n×n×n cube.
// Entries that cannot be resolved are recorded on the returned report
// instead of aborting; keys are visited in sorted order.
func Resolve(n int, l Layout) (map[nxcube.Position]nxcube.Color, *nxcube.LoadReport) {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	stickers := make(map[nxcube.Position]nxcube.Color, len(l))
	report := &nxcube.LoadReport{}
	for _, key := range keys {
		value := l[key]
		pos, err := ParseKey(n, key)
		if err != nil {
			report.Reject(key, value, err)
			continue
		}
		color, err := nxcube.ParseColor(value)
		if err != nil {
			report.Reject(key, value, err)
			continue
		}
		stickers[pos] = color
	}
	return stickers, report
}

// Apply resolves l and overwrites the matching stickers of c. The returned
// report lists resolution failures first, then anything the cube refused.
func Apply(c *nxcube.Cube, l Layout) *nxcube.LoadReport {
	stickers, report := Resolve(c.Size(), l)
	applied := c.Overwrite(stickers)
	report.Applied = applied.Applied
	report.Rejected = append(report.Rejected, applied.Rejected...)
	return report
}

// ApplyFile reads the layout at path and applies it to c.
func ApplyFile(c *nxcube.Cube, path string) (*nxcube.LoadReport, error) {
	l, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Apply(c, l), nil
}
