package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"hoteltec/internal/domain/catalog"
)

//go:embed defaultcatalog.yaml
var defaultCatalogYAML []byte

type seedItem struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Category    string  `yaml:"category"`
}

type seedCatalog struct {
	Items []seedItem `yaml:"items"`
}

// DefaultCatalog builds the starter menu provisioned for a hotel on its
// first storefront visit.
func DefaultCatalog(hotelID uint) ([]*catalog.Product, error) {
	var seed seedCatalog
	if err := yaml.Unmarshal(defaultCatalogYAML, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse default catalog seed: %w", err)
	}

	products := make([]*catalog.Product, 0, len(seed.Items))
	for _, item := range seed.Items {
		p, err := catalog.NewProduct(hotelID, item.Name, item.Description, item.Price, item.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid seed item %q: %w", item.Name, err)
		}
		products = append(products, p)
	}
	return products, nil
}
