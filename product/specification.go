package product

import "github.com/go-leo/specfilter/specification"

// ColorSpecification is satisfied by products of the given color.
func ColorSpecification(color Color) specification.Specification[Product] {
	return specification.Equal(Product.Color, color)
}

// SizeSpecification is satisfied by products of the given size.
func SizeSpecification(size Size) specification.Specification[Product] {
	return specification.Equal(Product.Size, size)
}

// SizeAtLeast is satisfied by products of the given size or larger.
func SizeAtLeast(size Size) specification.Specification[Product] {
	return specification.GreaterOrEqual(Product.Size, size)
}

// NameSpecification is satisfied by the product with the given name.
func NameSpecification(name string) specification.Specification[Product] {
	return specification.Equal(Product.Name, name)
}
