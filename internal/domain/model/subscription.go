package model

type SubscriptionPackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Description *string  `json:"description,omitempty"`
	MaxStores   int      `json:"maxStores"`
	MaxProducts int      `json:"maxProducts"`
	MaxUsers    int      `json:"maxUsers"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
	IsDefault   bool     `json:"isDefault"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type PackageInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=80"`
	Price       float64  `json:"price" validate:"gte=0"`
	Currency    string   `json:"currency" validate:"required,len=3"`
	Description string   `json:"description,omitempty"`
	MaxStores   int      `json:"maxStores" validate:"gte=0"`
	MaxProducts int      `json:"maxProducts" validate:"gte=0"`
	MaxUsers    int      `json:"maxUsers" validate:"gte=0"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
	IsDefault   bool     `json:"isDefault"`
}

type PackageUpdate struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    *string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Description *string   `json:"description,omitempty"`
	MaxStores   *int      `json:"maxStores,omitempty" validate:"omitempty,gte=0"`
	MaxProducts *int      `json:"maxProducts,omitempty" validate:"omitempty,gte=0"`
	MaxUsers    *int      `json:"maxUsers,omitempty" validate:"omitempty,gte=0"`
	Features    *[]string `json:"features,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
	IsDefault   *bool     `json:"isDefault,omitempty"`
}

type SubscriptionAssignment struct {
	StoreID               string `json:"storeId" validate:"required"`
	SubscriptionPackageID string `json:"subscriptionPackageId" validate:"required"`
}
