package cli

import (
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/go-leo/specfilter/filter"
	"github.com/go-leo/specfilter/internal/adhoc"
	"github.com/go-leo/specfilter/internal/report"
	"github.com/go-leo/specfilter/product"
	"github.com/go-leo/specfilter/specification"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Compare ad hoc filter methods with composed specifications on the sample products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), a.newFilter())
		},
	}
}

func runDemo(w io.Writer, f filter.Filter[product.Product]) error {
	products := product.Samples()

	var old adhoc.ProductFilter
	red := old.FilterByColor(products, product.Red)
	if _, err := report.Print(w, "Red products (old):", slices.Values(red), func(p product.Product) string {
		return p.Name() + " is red"
	}); err != nil {
		return err
	}

	red = f.Filter(products, product.ColorSpecification(product.Red))
	if _, err := report.Print(w, "Red products (new):", slices.Values(red), func(p product.Product) string {
		return p.Name() + " is red"
	}); err != nil {
		return err
	}

	largeYellow := specification.And(
		product.ColorSpecification(product.Yellow),
		product.SizeSpecification(product.Large),
	)
	_, err := report.Print(w, "Large yellow products:", slices.Values(f.Filter(products, largeYellow)), func(p product.Product) string {
		return p.Name() + " is large and yellow"
	})
	return err
}
