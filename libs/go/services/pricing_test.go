package services_test

import (
	"testing"

	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// decimalComparer lets cmp treat 80 and 80.00 as equal
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestExpandBundle(t *testing.T) {
	assert.Equal(t, []int64{1, 2}, services.ExpandBundle(3))
	assert.Equal(t, []int64{1}, services.ExpandBundle(1))
	assert.Equal(t, []int64{2}, services.ExpandBundle(2))
	assert.Equal(t, []int64{}, services.ExpandBundle(42))
}

func TestInventoryDeductions(t *testing.T) {
	tests := []struct {
		name      string
		productID int64
		quantity  int32
		want      []business.Deduction
	}{
		{
			name:      "single game",
			productID: 1,
			quantity:  2,
			want: []business.Deduction{
				{ProductID: 1, ItemType: "card_set", Quantity: 2},
				{ProductID: 1, ItemType: "packet", Quantity: 2},
				{ProductID: 1, ItemType: "sticker", Quantity: 2},
			},
		},
		{
			name:      "bundle consumes both games",
			productID: 3,
			quantity:  1,
			want: []business.Deduction{
				{ProductID: 1, ItemType: "card_set", Quantity: 1},
				{ProductID: 1, ItemType: "packet", Quantity: 1},
				{ProductID: 1, ItemType: "sticker", Quantity: 1},
				{ProductID: 2, ItemType: "card_set", Quantity: 1},
				{ProductID: 2, ItemType: "packet", Quantity: 1},
				{ProductID: 2, ItemType: "sticker", Quantity: 1},
			},
		},
		{
			name:      "zero quantity counts as one",
			productID: 2,
			quantity:  0,
			want: []business.Deduction{
				{ProductID: 2, ItemType: "card_set", Quantity: 1},
				{ProductID: 2, ItemType: "packet", Quantity: 1},
				{ProductID: 2, ItemType: "sticker", Quantity: 1},
			},
		},
		{
			name:      "unknown product",
			productID: 9,
			quantity:  1,
			want:      []business.Deduction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.InventoryDeductions(tt.productID, tt.quantity)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("InventoryDeductions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShippingFee(t *testing.T) {
	product := business.PricedProduct{ID: 1, Price: dec(360), DeliveryDhaka: dec(70), DeliveryOutside: dec(130)}
	empty := business.PricedProduct{ID: 1, Price: dec(360)}

	tests := []struct {
		name    string
		city    string
		product business.PricedProduct
		want    decimal.Decimal
	}{
		{"dhaka uses product fee", "Dhaka", product, dec(70)},
		{"dhaka ignores case and space", "  dhaka ", product, dec(70)},
		{"outside uses product fee", "Sylhet", product, dec(130)},
		{"dhaka falls back to default", "Dhaka", empty, dec(80)},
		{"outside falls back to default", "Khulna", empty, dec(150)},
		{"empty city is outside", "", empty, dec(150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(services.ShippingFee(tt.city, tt.product)))
		})
	}
}

func TestQuoteOrder(t *testing.T) {
	syndicate := business.PricedProduct{ID: 1, Price: dec(360), DeliveryDhaka: dec(80), DeliveryOutside: dec(150)}

	tests := []struct {
		name string
		in   business.QuoteInput
		want business.Quote
	}{
		{
			name: "dhaka no coupon",
			in:   business.QuoteInput{Product: syndicate, Quantity: 1, City: "Dhaka"},
			want: business.Quote{UnitPrice: dec(360), Quantity: 1, Subtotal: dec(360), Shipping: dec(80), Discount: dec(0), Total: dec(440)},
		},
		{
			name: "outside with coupon and quantity",
			in:   business.QuoteInput{Product: syndicate, Quantity: 2, City: "Rajshahi", CouponDiscount: dec(50)},
			want: business.Quote{UnitPrice: dec(360), Quantity: 2, Subtotal: dec(720), Shipping: dec(150), Discount: dec(50), Total: dec(820)},
		},
		{
			name: "coupon capped at subtotal",
			in:   business.QuoteInput{Product: syndicate, Quantity: 1, City: "Dhaka", CouponDiscount: dec(1000)},
			want: business.Quote{UnitPrice: dec(360), Quantity: 1, Subtotal: dec(360), Shipping: dec(80), Discount: dec(360), Total: dec(80)},
		},
		{
			name: "negative coupon ignored and zero quantity is one",
			in:   business.QuoteInput{Product: syndicate, Quantity: 0, City: "Dhaka", CouponDiscount: dec(-20)},
			want: business.Quote{UnitPrice: dec(360), Quantity: 1, Subtotal: dec(360), Shipping: dec(80), Discount: dec(0), Total: dec(440)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.QuoteOrder(tt.in)
			if diff := cmp.Diff(tt.want, got, decimalComparer); diff != "" {
				t.Errorf("QuoteOrder() mismatch (-want +got):\n%s", diff)
			}
			assert.False(t, got.Total.IsNegative())
		})
	}
}

func TestBundleUpsell(t *testing.T) {
	prices := map[int64]decimal.Decimal{1: dec(360), 2: dec(360), 3: dec(650)}

	t.Run("single game gets offer", func(t *testing.T) {
		got := services.BundleUpsell(1, prices, 1)
		require.NotNil(t, got)
		want := &business.Upsell{BundleID: 3, BundlePrice: dec(650), ExtraCost: dec(290), Savings: dec(70)}
		if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
			t.Errorf("BundleUpsell() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("scales with quantity", func(t *testing.T) {
		got := services.BundleUpsell(2, prices, 2)
		require.NotNil(t, got)
		assert.True(t, got.ExtraCost.Equal(dec(580)))
		assert.True(t, got.Savings.Equal(dec(140)))
	})

	t.Run("no offer for the bundle itself", func(t *testing.T) {
		assert.Nil(t, services.BundleUpsell(3, prices, 1))
	})

	t.Run("no offer without savings", func(t *testing.T) {
		expensive := map[int64]decimal.Decimal{1: dec(360), 2: dec(360), 3: dec(720)}
		assert.Nil(t, services.BundleUpsell(1, expensive, 1))
	})

	t.Run("no offer when a price is missing", func(t *testing.T) {
		assert.Nil(t, services.BundleUpsell(1, map[int64]decimal.Decimal{1: dec(360), 3: dec(650)}, 1))
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.Nil(t, services.BundleUpsell(8, prices, 1))
	})
}

func TestPricer_CustomCatalog(t *testing.T) {
	cat := config.DefaultCatalog()
	cat.ItemTypes = []string{"box"}
	cat.DeliveryOutside = 200
	p := services.NewPricer(cat)

	assert.Equal(t, []business.Deduction{
		{ProductID: 1, ItemType: "box", Quantity: 1},
		{ProductID: 2, ItemType: "box", Quantity: 1},
	}, p.InventoryDeductions(3, 1))
	assert.True(t, p.ShippingFee("Comilla", business.PricedProduct{}).Equal(dec(200)))
}
