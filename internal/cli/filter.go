package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-leo/specfilter/internal/report"
	"github.com/go-leo/specfilter/product"
	"github.com/go-leo/specfilter/specification"
)

type filterFlags struct {
	color   string
	size    string
	minSize string
}

func (a *app) filterCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List the products matching every given criterion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, labels, err := flags.specification()
			if err != nil {
				return err
			}
			products, err := a.loadProducts()
			if err != nil {
				return err
			}

			title := "All products:"
			if len(labels) > 0 {
				title = fmt.Sprintf("Products with %s:", strings.Join(labels, " and "))
			}
			matched := a.newFilter().Filter(products, spec)
			_, err = report.Print(cmd.OutOrStdout(), title, slices.Values(matched), product.Product.String)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.color, "color", "", "keep products of this color (red, blue, yellow)")
	cmd.Flags().StringVar(&flags.size, "size", "", "keep products of this size (small, medium, large)")
	cmd.Flags().StringVar(&flags.minSize, "min-size", "", "keep products of at least this size")
	cmd.Flags().String("catalog", "", "JSON product catalog (defaults to the built-in samples)")
	cmd.Flags().Bool("parallel", false, "evaluate the catalog in parallel chunks")
	_ = a.v.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = a.v.BindPFlag("parallel", cmd.Flags().Lookup("parallel"))
	return cmd
}

// specification ANDs the criteria given on the command line.
// Without criteria every product is satisfied.
func (f filterFlags) specification() (specification.Specification[product.Product], []string, error) {
	var specs []specification.Specification[product.Product]
	var labels []string
	if f.color != "" {
		c, err := product.ParseColor(f.color)
		if err != nil {
			return nil, nil, err
		}
		specs = append(specs, product.ColorSpecification(c))
		labels = append(labels, "color "+c.String())
	}
	if f.size != "" {
		s, err := product.ParseSize(f.size)
		if err != nil {
			return nil, nil, err
		}
		specs = append(specs, product.SizeSpecification(s))
		labels = append(labels, "size "+s.String())
	}
	if f.minSize != "" {
		s, err := product.ParseSize(f.minSize)
		if err != nil {
			return nil, nil, err
		}
		specs = append(specs, product.SizeAtLeast(s))
		labels = append(labels, "size at least "+s.String())
	}

	if len(specs) == 0 {
		return specification.Conjunction[product.Product](), nil, nil
	}
	spec := specs[0]
	for _, next := range specs[1:] {
		spec = spec.And(next)
	}
	return spec, labels, nil
}

func (a *app) loadProducts() ([]product.Product, error) {
	if a.cfg.Catalog == "" {
		return product.Samples(), nil
	}
	f, err := os.Open(a.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	products, err := product.DecodeCatalog(f)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("catalog", a.cfg.Catalog).Int("products", len(products)).Msg("catalog loaded")
	return products, nil
}
