package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sagarm/storefront/internal/client/api"
)

// parseProductFilter turns "key=value" tokens into a ProductFilter.
// Recognized keys: category, maxprice, sort.
func parseProductFilter(args []string) (api.ProductFilter, error) {
	f := api.ProductFilter{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "category":
			f.Category = value
		case "maxprice":
			p, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return f, fmt.Errorf("invalid maxprice %q", value)
			}
			f.MaxPrice = p
		case "sort":
			if value != "price-asc" && value != "price-desc" {
				return f, fmt.Errorf("sort must be price-asc or price-desc")
			}
			f.SortBy = value
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
	}
	return f, nil
}

// Products lists catalog products matching the optional filters and caches
// them by id for subsequent add commands.
func (a *App) Products(ctx context.Context, args []string) error {
	f, err := parseProductFilter(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	products, err := a.api.Products(ctx, f)
	if err != nil {
		printlnFn("Could not fetch products:", err.Error())
		return err
	}

	for _, p := range products {
		a.catalog[p.ID] = p
		printlnFn(fmt.Sprintf("%s  %-30s %8.2f  %s", p.ID, p.Name, p.Price, p.Category))
	}
	if len(products) == 0 {
		printlnFn("No products found")
	}
	return nil
}
