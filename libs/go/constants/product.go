package constants

// Product identifiers as stored in the products table
const (
	ProductSyndicate int64 = 1
	ProductTong      int64 = 2
	ProductBundle    int64 = 3
)

// Product display names
const (
	ProductNameSyndicate = "The Syndicate"
	ProductNameTong      = "TONG"
	ProductNameBundle    = "Chokka Bundle"
	ProductNameUnknown   = "Unknown Item"
)

// Inventory item types consumed by every game sold
const (
	ItemTypeCardSet = "card_set"
	ItemTypePacket  = "packet"
	ItemTypeSticker = "sticker"
)

// Delivery fees in BDT used when a product row carries none
const (
	DefaultDeliveryDhaka   int64 = 80
	DefaultDeliveryOutside int64 = 150
	DhakaCity                    = "Dhaka"
)

// DefaultReorderLevel is applied to inventory items created without one
const DefaultReorderLevel int32 = 10

// Expense categories
const (
	ExpenseCategoryPrint         = "print"
	ExpenseCategoryCutting       = "cutting"
	ExpenseCategoryPackaging     = "packaging"
	ExpenseCategoryMiscellaneous = "miscellaneous"
)
