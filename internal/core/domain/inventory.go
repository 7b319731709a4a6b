package domain

import "time"

// TransactionType is the direction of a stock movement.
type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

// Valid reports whether t is one of the two supported movement types.
func (t TransactionType) Valid() bool {
	return t == TransactionIn || t == TransactionOut
}

// Product is a stocked item. Price is non-negative; Quantity is a
// non-negative whole count.
type Product struct {
	ID         string    `json:"_id,omitempty"`
	Name       string    `json:"name" validate:"required"`
	SKU        string    `json:"sku" validate:"required"`
	Price      float64   `json:"price" validate:"gte=0"`
	Quantity   int       `json:"quantity" validate:"gte=0"`
	CategoryID string    `json:"categoryId,omitempty"`
	SupplierID string    `json:"supplierId,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

type Category struct {
	ID          string    `json:"_id,omitempty"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type Supplier struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Transaction records one stock movement against a product.
// Quantity is at least 1; Type is exactly "in" or "out".
type Transaction struct {
	ID        string          `json:"_id,omitempty"`
	ProductID string          `json:"productId" validate:"required"`
	Type      TransactionType `json:"type" validate:"required,oneof=in out"`
	Quantity  int             `json:"quantity" validate:"gte=1"`
	Date      string          `json:"date" validate:"required"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
}
