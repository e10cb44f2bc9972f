package texture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOption configures PNM loading.
type LoadOption func(*loadConfig)

type loadConfig struct {
	crop        *Rect
	transparent *[3]int
}

// WithCrop crops the loaded texture to the inclusive rectangle r.
func WithCrop(r Rect) LoadOption {
	return func(c *loadConfig) { c.crop = &r }
}

// WithTransparency maps every texel whose raw 8-bit value equals (r, g, b)
// to alpha zero.
func WithTransparency(r, g, b int) LoadOption {
	return func(c *loadConfig) { c.transparent = &[3]int{r, g, b} }
}

// LoadPNM reads a texture from an ASCII P3 (RGB) PNM file.
func LoadPNM(path string, opts ...LoadOption) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer f.Close()
	t, err := ReadPNM(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("texture: reading %s: %w", path, err)
	}
	return t, nil
}

// ReadPNM parses an ASCII P3 PNM stream: the P3 magic, width and height, a
// maximum value of 255, then width*height RGB triplets. Comment lines
// starting with '#' are skipped. Values are normalized to [0,1]. Unlike some
// ad-hoc writers that emit one value per line, any whitespace separation is
// accepted.
func ReadPNM(r io.Reader, opts ...LoadOption) (*Texture, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fields, err := pnmFields(r)
	if err != nil {
		return nil, err
	}
	if len(fields) < 4 {
		return nil, fmt.Errorf("pnm: truncated header")
	}
	if fields[0] != "P3" {
		return nil, fmt.Errorf("pnm: expected P3 magic, got %q", fields[0])
	}

	width, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("pnm: bad width %q", fields[1])
	}
	height, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("pnm: bad height %q", fields[2])
	}
	if fields[3] != "255" {
		return nil, fmt.Errorf("pnm: expected max value 255, got %q", fields[3])
	}

	values := fields[4:]
	if len(values) != 3*width*height {
		return nil, fmt.Errorf("pnm: got %d values, want %d for %dx%d",
			len(values), 3*width*height, width, height)
	}

	t, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(values); i += 3 {
		rgb, err := parseTriplet(values[i : i+3])
		if err != nil {
			return nil, err
		}
		alpha := 1.0
		if cfg.transparent != nil && rgb == *cfg.transparent {
			alpha = 0.0
		}
		t.data[i/3] = Color{
			R: float64(rgb[0]) / 255,
			G: float64(rgb[1]) / 255,
			B: float64(rgb[2]) / 255,
			A: alpha,
		}
	}

	if cfg.crop != nil {
		return t.Crop(*cfg.crop)
	}
	return t, nil
}

// pnmFields returns all whitespace-separated tokens with comment lines
// removed.
func pnmFields(r io.Reader) ([]string, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = append(fields, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pnm: %w", err)
	}
	return fields, nil
}

func parseTriplet(fields []string) ([3]int, error) {
	var rgb [3]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil || v < 0 || v > 255 {
			return rgb, fmt.Errorf("pnm: bad sample value %q", field)
		}
		rgb[i] = v
	}
	return rgb, nil
}
