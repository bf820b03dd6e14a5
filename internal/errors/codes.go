package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// Callers map these codes to messages; the raw engine error stays in logs.

const (
	// ==================== Uniqueness ====================
	UserEmailExists        = "USER_EMAIL_EXISTS"
	CategoryNameExists     = "CATEGORY_NAME_EXISTS"
	ProductSKUExists       = "PRODUCT_SKU_EXISTS"
	InventoryProductExists = "INVENTORY_PRODUCT_EXISTS"
	PaymentReferenceExists = "PAYMENT_REFERENCE_EXISTS"
	ReviewAlreadyExists    = "REVIEW_ALREADY_EXISTS"
	ConstraintUnique       = "CONSTRAINT_UNIQUE"

	// ==================== Referential integrity ====================
	ConstraintForeignKey = "CONSTRAINT_FOREIGN_KEY"
	DeleteRestricted     = "DELETE_RESTRICTED"

	// ==================== Value constraints ====================
	ProductPriceNegative      = "PRODUCT_PRICE_NEGATIVE"
	InventoryQuantityNegative = "INVENTORY_QUANTITY_NEGATIVE"
	OrderAmountNegative       = "ORDER_AMOUNT_NEGATIVE"
	OrderItemQuantityInvalid  = "ORDER_ITEM_QUANTITY_INVALID"
	PaymentAmountNegative     = "PAYMENT_AMOUNT_NEGATIVE"
	ReviewInvalidRating       = "REVIEW_INVALID_RATING"
	ConstraintCheck           = "CONSTRAINT_CHECK"
	ConstraintNotNull         = "CONSTRAINT_NOT_NULL"

	// ==================== Resources ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND"

	// ==================== Internal ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
