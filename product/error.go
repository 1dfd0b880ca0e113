package product

import "errors"

var (
	// ErrUnknownColor color name or value is not one of Red, Blue, Yellow
	ErrUnknownColor = errors.New("product: unknown color")

	// ErrUnknownSize size name or value is not one of Small, Medium, Large
	ErrUnknownSize = errors.New("product: unknown size")
)
