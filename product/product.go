package product

import (
	"fmt"
	"strings"
)

// Color of a Product.
type Color int

const (
	Red Color = iota
	Blue
	Yellow
)

var colorNames = [...]string{Red: "red", Blue: "blue", Yellow: "yellow"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(colorNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return []byte(colorNames[c]), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses a color name, ignoring case.
func ParseColor(s string) (Color, error) {
	for i, name := range colorNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Size of a Product. Sizes are ordered from Small to Large.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

var sizeNames = [...]string{Small: "small", Medium: "medium", Large: "large"}

func (s Size) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

func (s Size) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sizeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, int(s))
	}
	return []byte(sizeNames[s]), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	v, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSize parses a size name, ignoring case.
func ParseSize(s string) (Size, error) {
	for i, name := range sizeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Size(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, s)
}

// Product is an immutable item with a name, a color and a size.
type Product struct {
	name  string
	color Color
	size  Size
}

func New(name string, color Color, size Size) Product {
	return Product{name: name, color: color, size: size}
}

func (p Product) Name() string { return p.name }

func (p Product) Color() Color { return p.color }

func (p Product) Size() Size { return p.size }

func (p Product) String() string {
	return fmt.Sprintf("%s(%s,%s)", p.name, p.color, p.size)
}
