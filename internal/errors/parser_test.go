package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError_RecordNotFound(t *testing.T) {
	info := ParseError(gorm.ErrRecordNotFound, "user")
	assert.Equal(t, ResourceNotFound, info.Code)
	assert.Equal(t, "user not found", info.Message)
}

func TestParseError_WrappedRecordNotFound(t *testing.T) {
	wrapped := fmt.Errorf("load order: %w", gorm.ErrRecordNotFound)
	info := ParseError(wrapped, "order")
	assert.Equal(t, ResourceNotFound, info.Code)
}

func TestParseError_PostgresUnique(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantCode   string
	}{
		{"User email", "idx_users_email", UserEmailExists},
		{"Product SKU", "idx_products_sku", ProductSKUExists},
		{"Category name", "idx_categories_name", CategoryNameExists},
		{"Inventory product", "idx_inventories_product_id", InventoryProductExists},
		{"Payment reference", "idx_payments_transaction_reference", PaymentReferenceExists},
		{"Review pair", "idx_reviews_product_user", ReviewAlreadyExists},
		{"Unknown constraint", "idx_something_else", ConstraintUnique},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}
			info := ParseError(err, "row")
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.constraint, info.Constraint)
		})
	}
}

func TestParseError_PostgresForeignKey(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_orders_user"}
	info := ParseError(err, "order")
	assert.Equal(t, ConstraintForeignKey, info.Code)
	assert.Equal(t, "fk_orders_user", info.Constraint)
}

func TestParseError_PostgresNotNull(t *testing.T) {
	err := &pgconn.PgError{Code: "23502", ColumnName: "email"}
	info := ParseError(err, "user")
	assert.Equal(t, ConstraintNotNull, info.Code)
	assert.Equal(t, "email", info.Constraint)
}

func TestParseError_PostgresCheck(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantCode   string
	}{
		{"Product price", "chk_products_price", ProductPriceNegative},
		{"Review rating", "chk_reviews_rating", ReviewInvalidRating},
		{"Order item quantity", "chk_order_items_quantity", OrderItemQuantityInvalid},
		{"Inventory quantity", "chk_inventories_quantity", InventoryQuantityNegative},
		{"Payment amount", "chk_payments_amount", PaymentAmountNegative},
		{"Order subtotal", "chk_orders_subtotal", OrderAmountNegative},
		{"Unknown check", "chk_widgets_weight", ConstraintCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &pgconn.PgError{Code: "23514", ConstraintName: tt.constraint}
			info := ParseError(err, "row")
			assert.Equal(t, tt.wantCode, info.Code)
		})
	}
}

func TestParseError_SQLiteMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			"Unique email",
			errors.New("UNIQUE constraint failed: users.email"),
			UserEmailExists,
		},
		{
			"Unique review pair",
			errors.New("UNIQUE constraint failed: reviews.product_id, reviews.user_id"),
			ReviewAlreadyExists,
		},
		{
			"Foreign key",
			errors.New("FOREIGN KEY constraint failed"),
			ConstraintForeignKey,
		},
		{
			"Check rating",
			errors.New("CHECK constraint failed: chk_reviews_rating"),
			ReviewInvalidRating,
		},
		{
			"Check order item quantity",
			errors.New("CHECK constraint failed: chk_order_items_quantity"),
			OrderItemQuantityInvalid,
		},
		{
			"Not null",
			errors.New("NOT NULL constraint failed: users.email"),
			ConstraintNotNull,
		},
		{
			"Unclassified",
			errors.New("disk I/O error"),
			InternalDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err, "row")
			assert.Equal(t, tt.wantCode, info.Code)
		})
	}
}
