package tiles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxZoom is the deepest zoom level the proxy accepts.
const MaxZoom = 22

var (
	ErrUnknownStyle  = errors.New("unknown map style")
	ErrBadCoordinate = errors.New("tile coordinate out of range")
)

// Coordinate addresses a single XYZ tile.
type Coordinate struct {
	Z, X, Y int
}

// Validate checks the zoom level and that x, y fit the 2^z grid.
func (c Coordinate) Validate() error {
	if c.Z < 0 || c.Z > MaxZoom {
		return fmt.Errorf("%w: zoom %d", ErrBadCoordinate, c.Z)
	}
	size := 1 << c.Z
	if c.X < 0 || c.X >= size || c.Y < 0 || c.Y >= size {
		return fmt.Errorf("%w: %d/%d/%d", ErrBadCoordinate, c.Z, c.X, c.Y)
	}
	return nil
}

// ParseCoordinate reads z, x and y path segments. A trailing extension on y
// (".png", ".webp") is ignored.
func ParseCoordinate(z, x, y string) (Coordinate, error) {
	if i := strings.IndexByte(y, '.'); i >= 0 {
		y = y[:i]
	}

	var c Coordinate
	var err error
	if c.Z, err = strconv.Atoi(z); err != nil {
		return c, fmt.Errorf("%w: zoom %q", ErrBadCoordinate, z)
	}
	if c.X, err = strconv.Atoi(x); err != nil {
		return c, fmt.Errorf("%w: x %q", ErrBadCoordinate, x)
	}
	if c.Y, err = strconv.Atoi(y); err != nil {
		return c, fmt.Errorf("%w: y %q", ErrBadCoordinate, y)
	}

	return c, c.Validate()
}

// BuildURL fills a provider template. Supported tokens: {style}, {key},
// {z}, {x}, {y} and {tms_y}.
func BuildURL(tpl string, style Style, key string, c Coordinate) string {
	s := strings.ReplaceAll(tpl, "{style}", string(style))
	s = strings.ReplaceAll(s, "{key}", key)
	s = strings.ReplaceAll(s, "{z}", strconv.Itoa(c.Z))
	s = strings.ReplaceAll(s, "{x}", strconv.Itoa(c.X))
	s = strings.ReplaceAll(s, "{y}", strconv.Itoa(c.Y))

	if strings.Contains(s, "{tms_y}") {
		maxCoord := (1 << c.Z) - 1
		s = strings.ReplaceAll(s, "{tms_y}", strconv.Itoa(maxCoord-c.Y))
	}

	return s
}
