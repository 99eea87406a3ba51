package model

type ProductVariant struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"productId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Stock       float64  `json:"stock"`
	Weight      *float64 `json:"weight,omitempty"`
	WeightUnit  string   `json:"weightUnit,omitempty"`
	SKU         string   `json:"sku"`
	IsActive    bool     `json:"isActive"`
}

type Product struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Brand             string           `json:"brand"`
	Category          string           `json:"category"`
	BasePrice         float64          `json:"basePrice"`
	Unit              string           `json:"unit"`
	Type              string           `json:"type"`
	Stock             float64          `json:"stock"`
	LowStockThreshold float64          `json:"lowStockThreshold"`
	IsActive          bool             `json:"isActive"`
	ImageURL          string           `json:"imageUrl,omitempty"`
	Barcode           string           `json:"barcode,omitempty"`
	Variants          []ProductVariant `json:"variants,omitempty"`
	CreatedAt         string           `json:"createdAt"`
	UpdatedAt         string           `json:"updatedAt"`
}

func (p Product) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

type OrderItem struct {
	ID         string   `json:"id"`
	OrderID    string   `json:"orderId"`
	ProductID  string   `json:"productId"`
	VariantID  string   `json:"variantId,omitempty"`
	Quantity   float64  `json:"quantity"`
	Weight     *float64 `json:"weight,omitempty"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
}

type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	CustomerID    string      `json:"customerId,omitempty"`
	CustomerName  string      `json:"customerName,omitempty"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	TaxRate       float64     `json:"taxRate"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

type ProductInput struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Description       string  `json:"description"`
	Brand             string  `json:"brand"`
	Category          string  `json:"category" validate:"required"`
	BasePrice         float64 `json:"basePrice" validate:"gte=0"`
	Unit              string  `json:"unit" validate:"required"`
	Type              string  `json:"type"`
	Stock             float64 `json:"stock" validate:"gte=0"`
	LowStockThreshold float64 `json:"lowStockThreshold" validate:"gte=0"`
	IsActive          bool    `json:"isActive"`
	ImageURL          string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Barcode           string  `json:"barcode,omitempty"`
}

type ProductUpdate struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description       *string  `json:"description,omitempty"`
	Category          *string  `json:"category,omitempty"`
	BasePrice         *float64 `json:"basePrice,omitempty" validate:"omitempty,gte=0"`
	Stock             *float64 `json:"stock,omitempty" validate:"omitempty,gte=0"`
	LowStockThreshold *float64 `json:"lowStockThreshold,omitempty" validate:"omitempty,gte=0"`
	IsActive          *bool    `json:"isActive,omitempty"`
}

type OrderItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	VariantID string  `json:"variantId,omitempty"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

type OrderInput struct {
	StoreID       string           `json:"storeId,omitempty"`
	CustomerName  string           `json:"customerName,omitempty"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	TaxRate       float64          `json:"taxRate" validate:"gte=0"`
	PaymentMethod string           `json:"paymentMethod" validate:"required"`
}
