package middleware

import (
	"fmt"

	"github.com/chokka/chokka-api/libs/go/constants"
)

const (
	smallBody = 16 * 1024
	bulkBody  = 256 * 1024
)

var (
	nameRule = ValidationRule{
		Field:     "customer_name",
		Type:      "string",
		Required:  true,
		MinLength: 1,
		MaxLength: 100,
		Sanitize:  true,
	}
	phoneRule = ValidationRule{
		Field:    "customer_phone",
		Type:     "phone",
		Required: true,
		Sanitize: true,
	}
	addressRule = ValidationRule{
		Field:     "customer_address",
		Type:      "string",
		Required:  true,
		MaxLength: 500,
		Sanitize:  true,
	}
	quantityRule = ValidationRule{
		Field: "quantity",
		Type:  "integer",
		Min:   float64Ptr(1),
		Max:   float64Ptr(50),
	}
	productIDRule = ValidationRule{
		Field:    "product_id",
		Type:     "integer",
		Required: true,
		Min:      float64Ptr(1),
	}
	couponCodeRule = ValidationRule{
		Field:     "coupon_code",
		Type:      "string",
		MaxLength: 50,
		Pattern:   CodeRegex,
		Sanitize:  true,
	}
	moneyRule = func(field string, required bool) ValidationRule {
		return ValidationRule{
			Field:    field,
			Type:     "decimal",
			Required: required,
			Min:      float64Ptr(0),
		}
	}
	dateRule = ValidationRule{
		Field: "date",
		Type:  "date",
	}
)

// CreateOrderValidation guards the public checkout. The storefront posts
// display-only fields alongside the form, so unknown fields pass.
var CreateOrderValidation = ValidationConfig{
	MaxBodySize:        smallBody,
	AllowUnknownFields: true,
	Rules: []ValidationRule{
		nameRule,
		phoneRule,
		addressRule,
		{Field: "customer_email", Type: "email", MaxLength: 255, Sanitize: true},
		{Field: "city", Type: "string", Required: true, MaxLength: 100, Sanitize: true},
		productIDRule,
		quantityRule,
		couponCodeRule,
		{Field: "note", Type: "string", MaxLength: 500, Sanitize: true},
		moneyRule("total_price", false),
	},
}

// QuoteValidation guards the checkout price preview
var QuoteValidation = ValidationConfig{
	MaxBodySize:        smallBody,
	AllowUnknownFields: true,
	Rules: []ValidationRule{
		productIDRule,
		quantityRule,
		{Field: "city", Type: "string", MaxLength: 100, Sanitize: true},
		couponCodeRule,
	},
}

// VerifyCouponValidation guards the public coupon check
var VerifyCouponValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "code", Type: "string", Required: true, MaxLength: 50, Pattern: CodeRegex, Sanitize: true},
	},
}

// AdminLoginValidation guards the admin login
var AdminLoginValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "password", Type: "string", Required: true, MaxLength: 128},
	},
}

// CreateReviewValidation guards review submission
var CreateReviewValidation = ValidationConfig{
	MaxBodySize:        smallBody,
	AllowUnknownFields: true,
	Rules: []ValidationRule{
		nameRule,
		{Field: "rating", Type: "integer", Required: true, Min: float64Ptr(1), Max: float64Ptr(5)},
		{Field: "comment", Type: "string", MaxLength: 2000, Sanitize: true},
		{Field: "image_url", Type: "url", Sanitize: true},
		{Field: "product_id", Type: "integer", Min: float64Ptr(1)},
	},
}

// CreateCouponValidation guards coupon creation
var CreateCouponValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "code", Type: "string", Required: true, MaxLength: 50, Pattern: CodeRegex, Sanitize: true},
		moneyRule("discount", true),
		{Field: "is_active", Type: "boolean"},
	},
}

// UpdateCouponValidation guards coupon edits
var UpdateCouponValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "code", Type: "string", MaxLength: 50, Pattern: CodeRegex, Sanitize: true},
		moneyRule("discount", false),
		{Field: "is_active", Type: "boolean"},
	},
}

// UpdateProductValidation guards price and stock edits
var UpdateProductValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		moneyRule("price", false),
		moneyRule("cost", false),
		{Field: "stock", Type: "integer", Min: float64Ptr(0)},
		moneyRule("delivery_dhaka", false),
		moneyRule("delivery_outside", false),
	},
}

// UpdateOrderStatusValidation guards manual status changes
var UpdateOrderStatusValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "status", Type: "string", Required: true, MaxLength: 64, Sanitize: true},
		{Field: "tracking_code", Type: "string", MaxLength: 64, Sanitize: true},
	},
}

// UpdateOrderDetailsValidation guards customer detail edits
var UpdateOrderDetailsValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		nameRule,
		phoneRule,
		addressRule,
		moneyRule("total_price", true),
	},
}

// CreateShipmentValidation guards a single Steadfast consignment. Presence of
// the recipient fields is checked by the handler once aliases are folded in.
var CreateShipmentValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "order_id", Type: "integer", Min: float64Ptr(1)},
		{Field: "invoice", Type: "string", Required: true, MaxLength: 64, Sanitize: true},
		{Field: "recipient_name", Type: "string", MaxLength: 100, Sanitize: true},
		{Field: "recipient_phone", Type: "phone", Sanitize: true},
		{Field: "recipient_address", Type: "string", MaxLength: 500, Sanitize: true},
		moneyRule("cod_amount", false),
		{Field: "note", Type: "string", MaxLength: 500, Sanitize: true},
		// admin panel field names
		{Field: "name", Type: "string", MaxLength: 100, Sanitize: true},
		{Field: "phone", Type: "phone", Sanitize: true},
		{Field: "address", Type: "string", MaxLength: 500, Sanitize: true},
		moneyRule("amount", false),
	},
}

// BulkShipmentValidation guards bulk consignment creation
var BulkShipmentValidation = ValidationConfig{
	MaxBodySize: bulkBody,
	Rules: []ValidationRule{
		{
			Field:     "order_ids",
			Type:      "array",
			Required:  true,
			MinLength: 1,
			MaxLength: 500,
			Custom:    positiveIDs,
		},
	},
}

// InventoryValidation guards inventory row creation
var InventoryValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "name", Type: "string", Required: true, MaxLength: 100, Sanitize: true},
		{Field: "category", Type: "string", MaxLength: 50, Sanitize: true},
		{Field: "product_id", Type: "integer", Min: float64Ptr(1)},
		{
			Field:         "item_type",
			Type:          "string",
			AllowedValues: []string{constants.ItemTypeCardSet, constants.ItemTypePacket, constants.ItemTypeSticker},
			Sanitize:      true,
		},
		{Field: "stock", Type: "integer", Min: float64Ptr(0)},
		{Field: "reorder_level", Type: "integer", Min: float64Ptr(0)},
		moneyRule("unit_cost", false),
	},
}

// UpdateInventoryValidation guards inventory edits
var UpdateInventoryValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "name", Type: "string", MaxLength: 100, Sanitize: true},
		{Field: "category", Type: "string", MaxLength: 50, Sanitize: true},
		{Field: "stock", Type: "integer", Min: float64Ptr(0)},
		{Field: "reorder_level", Type: "integer", Min: float64Ptr(0)},
		moneyRule("unit_cost", false),
	},
}

// RestockValidation guards bulk restocking
var RestockValidation = ValidationConfig{
	MaxBodySize: bulkBody,
	Rules: []ValidationRule{
		{Field: "items", Type: "array", Required: true, MinLength: 1, MaxLength: 200, Custom: restockItems},
	},
}

// ExpenseValidation guards expense creation
var ExpenseValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		dateRule,
		{
			Field:    "category",
			Type:     "string",
			Required: true,
			AllowedValues: []string{
				constants.ExpenseCategoryPrint,
				constants.ExpenseCategoryCutting,
				constants.ExpenseCategoryPackaging,
				constants.ExpenseCategoryMiscellaneous,
			},
			Sanitize: true,
		},
		{Field: "description", Type: "string", MaxLength: 500, Sanitize: true},
		moneyRule("amount", true),
	},
}

// PayoutValidation guards payout creation
var PayoutValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		dateRule,
		{Field: "invoice_no", Type: "string", MaxLength: 64, Sanitize: true},
		moneyRule("amount", true),
		{Field: "note", Type: "string", MaxLength: 500, Sanitize: true},
	},
}

// GalleryImageValidation guards registering an externally hosted image
var GalleryImageValidation = ValidationConfig{
	MaxBodySize: smallBody,
	Rules: []ValidationRule{
		{Field: "image_url", Type: "url", Required: true, MaxLength: 2048, Sanitize: true},
		{Field: "caption", Type: "string", MaxLength: 300, Sanitize: true},
		{Field: "product_id", Type: "integer", Min: float64Ptr(1)},
	},
}

// ListOrdersQueryValidation guards the admin order list filters
var ListOrdersQueryValidation = ValidationConfig{
	Rules: []ValidationRule{
		{Field: "status", Type: "string", MaxLength: 64},
		{Field: "limit", Type: "integer", Min: float64Ptr(1), Max: float64Ptr(500)},
		{Field: "offset", Type: "integer", Min: float64Ptr(0)},
	},
}

// ProductFilterQueryValidation guards ?product_id= on reviews and gallery
var ProductFilterQueryValidation = ValidationConfig{
	Rules: []ValidationRule{
		{Field: "product_id", Type: "integer", Min: float64Ptr(1)},
	},
}

func positiveIDs(value interface{}) error {
	arr, _ := value.([]interface{})
	for i, v := range arr {
		if err := validateNumber(v, ValidationRule{Min: float64Ptr(1)}, true); err != nil {
			return fmt.Errorf("item %d %s", i, err.Error())
		}
	}
	return nil
}

func restockItems(value interface{}) error {
	arr, _ := value.([]interface{})
	rules := []ValidationRule{
		{Field: "id", Type: "integer", Required: true, Min: float64Ptr(1)},
		{Field: "add_quantity", Type: "integer", Required: true, Min: float64Ptr(1)},
	}
	for i, v := range arr {
		item, ok := v.(map[string]interface{})
		if !ok {
			return fmt.Errorf("item %d must be an object", i)
		}
		if errs := validateFields(item, rules, false); len(errs) > 0 {
			return fmt.Errorf("item %d %s: %s", i, errs[0].Field, errs[0].Message)
		}
	}
	return nil
}
