package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorInfo describes a classified persistence error
type ErrorInfo struct {
	Code       string // error code (see codes.go)
	Constraint string // engine constraint name, when known
	Message    string // user-facing message
}

// ParseError classifies a database error into a stable code naming the
// violated constraint. Context is the entity being written ("user",
// "product", ...) and shapes the not-found / fallback messages.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "an internal error occurred",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: context + " not found",
		}
	}

	// PostgreSQL surfaces a SQLSTATE plus the constraint name.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return classifyUnique(pgErr.ConstraintName, context)
		case "23503":
			return ErrorInfo{
				Code:       ConstraintForeignKey,
				Constraint: pgErr.ConstraintName,
				Message:    "referenced row is missing or still referenced: " + pgErr.ConstraintName,
			}
		case "23502":
			return ErrorInfo{
				Code:       ConstraintNotNull,
				Constraint: pgErr.ColumnName,
				Message:    "required column is missing: " + pgErr.ColumnName,
			}
		case "23514":
			return classifyCheck(pgErr.ConstraintName, context)
		}
	}

	// SQLite (tests) only gives message text.
	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)
	switch {
	case strings.Contains(errStrLower, "unique constraint"):
		return classifyUnique(errStr, context)
	case strings.Contains(errStrLower, "foreign key constraint"):
		return ErrorInfo{
			Code:    ConstraintForeignKey,
			Message: "referenced row is missing or still referenced",
		}
	case strings.Contains(errStrLower, "not null constraint") ||
		(strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "not-null")):
		return ErrorInfo{
			Code:    ConstraintNotNull,
			Message: "required column is missing",
		}
	case strings.Contains(errStrLower, "check constraint"):
		return classifyCheck(errStr, context)
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: "database error while writing " + context,
	}
}

// classifyUnique maps a unique-violation to the domain key it protects.
// The hint may be a bare constraint name (postgres) or a full sqlite message.
func classifyUnique(hint, context string) ErrorInfo {
	h := strings.ToLower(hint)
	switch {
	case strings.Contains(h, "email"):
		return ErrorInfo{Code: UserEmailExists, Constraint: hint, Message: "email is already registered"}
	case strings.Contains(h, "sku"):
		return ErrorInfo{Code: ProductSKUExists, Constraint: hint, Message: "sku is already in use"}
	case strings.Contains(h, "categories") && strings.Contains(h, "name"):
		return ErrorInfo{Code: CategoryNameExists, Constraint: hint, Message: "category name is already in use"}
	case strings.Contains(h, "inventories") && strings.Contains(h, "product_id"):
		return ErrorInfo{Code: InventoryProductExists, Constraint: hint, Message: "product already has an inventory row"}
	case strings.Contains(h, "transaction_reference"):
		return ErrorInfo{Code: PaymentReferenceExists, Constraint: hint, Message: "transaction reference is already recorded"}
	case strings.Contains(h, "reviews"):
		return ErrorInfo{Code: ReviewAlreadyExists, Constraint: hint, Message: "user already reviewed this product"}
	}
	return ErrorInfo{
		Code:       ConstraintUnique,
		Constraint: hint,
		Message:    context + " violates a unique constraint",
	}
}

// classifyCheck maps a check-violation to the numeric rule it encodes.
func classifyCheck(hint, context string) ErrorInfo {
	h := strings.ToLower(hint)
	switch {
	case strings.Contains(h, "price"):
		return ErrorInfo{Code: ProductPriceNegative, Constraint: hint, Message: "price must not be negative"}
	case strings.Contains(h, "rating"):
		return ErrorInfo{Code: ReviewInvalidRating, Constraint: hint, Message: "rating must be between 1 and 5"}
	case strings.Contains(h, "order_items") && strings.Contains(h, "quantity"):
		return ErrorInfo{Code: OrderItemQuantityInvalid, Constraint: hint, Message: "order item quantity must be positive"}
	case strings.Contains(h, "quantity"):
		return ErrorInfo{Code: InventoryQuantityNegative, Constraint: hint, Message: "inventory quantity must not be negative"}
	case strings.Contains(h, "amount"):
		return ErrorInfo{Code: PaymentAmountNegative, Constraint: hint, Message: "payment amount must not be negative"}
	case strings.Contains(h, "subtotal") || strings.Contains(h, "total") ||
		strings.Contains(h, "shipping_fee") || strings.Contains(h, "tax"):
		return ErrorInfo{Code: OrderAmountNegative, Constraint: hint, Message: "order amounts must not be negative"}
	}
	return ErrorInfo{
		Code:       ConstraintCheck,
		Constraint: hint,
		Message:    context + " violates a check constraint",
	}
}
