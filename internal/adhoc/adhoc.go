// Package adhoc holds the per-attribute filter methods that predate
// specification based filtering. Every new criterion needs a new method here,
// which is what the specification and filter packages avoid.
package adhoc

import "github.com/go-leo/specfilter/product"

type ProductFilter struct{}

func (ProductFilter) FilterBySize(products []product.Product, size product.Size) []product.Product {
	var result []product.Product
	for _, p := range products {
		if p.Size() == size {
			result = append(result, p)
		}
	}
	return result
}

func (ProductFilter) FilterByColor(products []product.Product, color product.Color) []product.Product {
	var result []product.Product
	for _, p := range products {
		if p.Color() == color {
			result = append(result, p)
		}
	}
	return result
}
