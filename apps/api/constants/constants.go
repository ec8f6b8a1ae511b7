package constants

// Route prefixes
const (
	APIPrefix   = "/api"
	HealthPath  = "/health"
	SwaggerPath = "/swagger/*any"
)

// Messages returned to API clients
const (
	InvalidRequestBody = "Invalid request body"
	TrackingRequired   = "Tracking code is required"
	ImageRequired      = "An image file is required in the file field"
	ImageTooLarge      = "Image is larger than 10 MB"
	UploadUnreadable   = "Failed to read uploaded file"
	CouponExists       = "Coupon code already exists"
	CourierNotReady    = "Courier integration is not configured"
	InvalidCredentials = "Invalid credentials"
)
