package product

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Samples returns a fresh copy of the three sample products:
// a small blue apple, a large red tree and a large yellow house.
func Samples() []Product {
	return []Product{
		New("Apple", Blue, Small),
		New("Tree", Red, Large),
		New("House", Yellow, Large),
	}
}

type record struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
	Size  Size   `json:"size"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{Name: p.name, Color: p.color, Size: p.size})
}

// DecodeCatalog reads a JSON array of products such as
// [{"name":"Apple","color":"blue","size":"small"}].
func DecodeCatalog(r io.Reader) ([]Product, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("product: decode catalog: %w", err)
	}
	products := make([]Product, 0, len(records))
	for _, rec := range records {
		products = append(products, New(rec.Name, rec.Color, rec.Size))
	}
	return products, nil
}

// EncodeCatalog writes products as a JSON array.
func EncodeCatalog(w io.Writer, products []Product) error {
	if products == nil {
		products = []Product{}
	}
	if err := json.NewEncoder(w).Encode(products); err != nil {
		return fmt.Errorf("product: encode catalog: %w", err)
	}
	return nil
}
