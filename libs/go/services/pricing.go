package services

import (
	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// Pricer holds the catalog rules used to price orders and derive the
// inventory they consume
type Pricer struct {
	catalog *config.Catalog
}

// NewPricer creates a Pricer over catalog. A nil catalog uses the defaults.
func NewPricer(catalog *config.Catalog) *Pricer {
	if catalog == nil {
		catalog = config.DefaultCatalog()
	}
	return &Pricer{catalog: catalog}
}

var defaultPricer = NewPricer(nil)

// ExpandBundle returns the games consumed by one unit of productID
func ExpandBundle(productID int64) []int64 {
	return defaultPricer.ExpandBundle(productID)
}

// InventoryDeductions returns the inventory rows an order consumes
func InventoryDeductions(productID int64, quantity int32) []business.Deduction {
	return defaultPricer.InventoryDeductions(productID, quantity)
}

// ShippingFee returns the delivery charge for city
func ShippingFee(city string, product business.PricedProduct) decimal.Decimal {
	return defaultPricer.ShippingFee(city, product)
}

// QuoteOrder computes the authoritative order total
func QuoteOrder(in business.QuoteInput) business.Quote {
	return defaultPricer.QuoteOrder(in)
}

// BundleUpsell returns the bundle offer for a single-game order
func BundleUpsell(productID int64, prices map[int64]decimal.Decimal, quantity int32) *business.Upsell {
	return defaultPricer.BundleUpsell(productID, prices, quantity)
}

// ExpandBundle returns the games consumed by one unit of productID. Unknown
// products consume nothing.
func (p *Pricer) ExpandBundle(productID int64) []int64 {
	return p.catalog.Expand(productID)
}

// InventoryDeductions returns one deduction per expanded game and item type.
// A quantity below one is treated as one.
func (p *Pricer) InventoryDeductions(productID int64, quantity int32) []business.Deduction {
	if quantity < 1 {
		quantity = 1
	}
	games := p.ExpandBundle(productID)
	out := make([]business.Deduction, 0, len(games)*len(p.catalog.ItemTypes))
	for _, game := range games {
		for _, itemType := range p.catalog.ItemTypes {
			out = append(out, business.Deduction{ProductID: game, ItemType: itemType, Quantity: quantity})
		}
	}
	return out
}

// ShippingFee returns the product's Dhaka fee when city is Dhaka and the
// outside fee otherwise. Zero fees fall back to the catalog defaults.
func (p *Pricer) ShippingFee(city string, product business.PricedProduct) decimal.Decimal {
	if p.catalog.IsDhaka(city) {
		if product.DeliveryDhaka.IsPositive() {
			return product.DeliveryDhaka
		}
		return decimal.NewFromInt(p.catalog.DeliveryDhaka)
	}
	if product.DeliveryOutside.IsPositive() {
		return product.DeliveryOutside
	}
	return decimal.NewFromInt(p.catalog.DeliveryOutside)
}

// QuoteOrder computes subtotal + shipping - discount. The coupon discount is
// capped at the subtotal and the total never goes below zero.
func (p *Pricer) QuoteOrder(in business.QuoteInput) business.Quote {
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	subtotal := in.Product.Price.Mul(decimal.NewFromInt32(quantity))
	shipping := p.ShippingFee(in.City, in.Product)

	discount := in.CouponDiscount
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	total := subtotal.Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return business.Quote{
		UnitPrice: in.Product.Price,
		Quantity:  quantity,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Discount:  discount,
		Total:     total,
	}
}

// BundleUpsell offers the bundle containing productID. prices maps product
// ids to unit prices. Nil is returned for bundles, unknown products and
// when the bundle does not save money over buying its games separately.
func (p *Pricer) BundleUpsell(productID int64, prices map[int64]decimal.Decimal, quantity int32) *business.Upsell {
	if quantity < 1 {
		quantity = 1
	}
	if p.catalog.IsBundle(productID) {
		return nil
	}
	bundle, ok := p.catalog.BundleFor(productID)
	if !ok {
		return nil
	}

	single, ok := prices[productID]
	if !ok {
		return nil
	}
	bundlePrice, ok := prices[bundle.ID]
	if !ok {
		return nil
	}

	separate := decimal.Zero
	for _, comp := range bundle.Components {
		price, ok := prices[comp]
		if !ok {
			return nil
		}
		separate = separate.Add(price)
	}

	savings := separate.Sub(bundlePrice)
	if !savings.IsPositive() {
		return nil
	}

	qty := decimal.NewFromInt32(quantity)
	return &business.Upsell{
		BundleID:    bundle.ID,
		BundlePrice: bundlePrice,
		ExtraCost:   bundlePrice.Sub(single).Mul(qty),
		Savings:     savings.Mul(qty),
	}
}
