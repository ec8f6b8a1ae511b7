package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/chokka/chokka-api/libs/go/constants"
	"gopkg.in/yaml.v3"
)

// ProductEntry describes one sellable product. Components lists the games a
// bundle is made of; a product without components consumes itself.
type ProductEntry struct {
	ID         int64   `yaml:"id"`
	Name       string  `yaml:"name"`
	Components []int64 `yaml:"components,omitempty"`
}

// Catalog is the store data that changes rarely enough to live in a file
type Catalog struct {
	Products        []ProductEntry `yaml:"products"`
	ItemTypes       []string       `yaml:"item_types"`
	DeliveryDhaka   int64          `yaml:"delivery_dhaka"`
	DeliveryOutside int64          `yaml:"delivery_outside"`
	DhakaCity       string         `yaml:"dhaka_city"`
	TelegramChatIDs []string       `yaml:"telegram_chat_ids"`
	AdminPanelURL   string         `yaml:"admin_panel_url"`
}

// DefaultCatalog reproduces the shop's current catalog
func DefaultCatalog() *Catalog {
	return &Catalog{
		Products: []ProductEntry{
			{ID: constants.ProductSyndicate, Name: constants.ProductNameSyndicate},
			{ID: constants.ProductTong, Name: constants.ProductNameTong},
			{
				ID:         constants.ProductBundle,
				Name:       constants.ProductNameBundle,
				Components: []int64{constants.ProductSyndicate, constants.ProductTong},
			},
		},
		ItemTypes:       []string{constants.ItemTypeCardSet, constants.ItemTypePacket, constants.ItemTypeSticker},
		DeliveryDhaka:   constants.DefaultDeliveryDhaka,
		DeliveryOutside: constants.DefaultDeliveryOutside,
		DhakaCity:       constants.DhakaCity,
		AdminPanelURL:   "https://chokka.shop/admin",
	}
}

// LoadCatalog reads a YAML catalog from path. Fields the file leaves empty
// keep their default values. An empty path returns the defaults.
func LoadCatalog(path string) (*Catalog, error) {
	cat := DefaultCatalog()
	if path == "" {
		return cat, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store catalog %s: %w", path, err)
	}

	var file Catalog
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse store catalog %s: %w", path, err)
	}

	cat.merge(&file)
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) merge(o *Catalog) {
	if len(o.Products) > 0 {
		c.Products = o.Products
	}
	if len(o.ItemTypes) > 0 {
		c.ItemTypes = o.ItemTypes
	}
	if o.DeliveryDhaka > 0 {
		c.DeliveryDhaka = o.DeliveryDhaka
	}
	if o.DeliveryOutside > 0 {
		c.DeliveryOutside = o.DeliveryOutside
	}
	if o.DhakaCity != "" {
		c.DhakaCity = o.DhakaCity
	}
	if len(o.TelegramChatIDs) > 0 {
		c.TelegramChatIDs = o.TelegramChatIDs
	}
	if o.AdminPanelURL != "" {
		c.AdminPanelURL = o.AdminPanelURL
	}
}

// Validate checks that product ids are unique and that bundle components
// reference known, non-bundle products.
func (c *Catalog) Validate() error {
	seen := make(map[int64]ProductEntry, len(c.Products))
	for _, p := range c.Products {
		if p.ID <= 0 {
			return fmt.Errorf("catalog product %q has invalid id %d", p.Name, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("catalog product id %d listed twice", p.ID)
		}
		seen[p.ID] = p
	}
	for _, p := range c.Products {
		for _, comp := range p.Components {
			child, ok := seen[comp]
			if !ok {
				return fmt.Errorf("catalog product %d references unknown component %d", p.ID, comp)
			}
			if len(child.Components) > 0 {
				return fmt.Errorf("catalog product %d nests bundle %d", p.ID, comp)
			}
		}
	}
	return nil
}

func (c *Catalog) find(id int64) (ProductEntry, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return ProductEntry{}, false
}

// ProductName returns the display name for id, or "Unknown Item"
func (c *Catalog) ProductName(id int64) string {
	if p, ok := c.find(id); ok && p.Name != "" {
		return p.Name
	}
	return constants.ProductNameUnknown
}

// Expand returns the games consumed by one unit of product id. Unknown ids
// expand to nothing.
func (c *Catalog) Expand(id int64) []int64 {
	p, ok := c.find(id)
	if !ok {
		return []int64{}
	}
	if len(p.Components) == 0 {
		return []int64{p.ID}
	}
	out := make([]int64, len(p.Components))
	copy(out, p.Components)
	return out
}

// IsBundle reports whether id is made of other products
func (c *Catalog) IsBundle(id int64) bool {
	p, ok := c.find(id)
	return ok && len(p.Components) > 0
}

// BundleFor returns the first bundle containing id
func (c *Catalog) BundleFor(id int64) (ProductEntry, bool) {
	for _, p := range c.Products {
		for _, comp := range p.Components {
			if comp == id {
				return p, true
			}
		}
	}
	return ProductEntry{}, false
}

// IsDhaka compares city to the configured Dhaka name, ignoring case and
// surrounding space
func (c *Catalog) IsDhaka(city string) bool {
	return strings.EqualFold(strings.TrimSpace(city), c.DhakaCity)
}
