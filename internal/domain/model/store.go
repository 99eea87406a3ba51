package model

type StoreOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Store struct {
	ID                    string               `json:"id"`
	Name                  string               `json:"name"`
	BusinessType          string               `json:"businessType"`
	Street                *string              `json:"street"`
	City                  *string              `json:"city"`
	State                 *string              `json:"state"`
	PostalCode            *string              `json:"postalCode"`
	Country               *string              `json:"country"`
	Phone                 *string              `json:"phone"`
	Email                 *string              `json:"email"`
	Website               *string              `json:"website"`
	SubscriptionPlan      string               `json:"subscriptionPlan"`
	SubscriptionStatus    string               `json:"subscriptionStatus"`
	SubscriptionExpiresAt *string              `json:"subscriptionExpiresAt"`
	SubscriptionPackage   *SubscriptionPackage `json:"subscriptionPackage"`
	CreatedAt             string               `json:"createdAt"`
	UpdatedAt             string               `json:"updatedAt"`
	Owner                 StoreOwner           `json:"owner"`
	CreatedByAdmin        *StoreOwner          `json:"createdByAdmin,omitempty"`
}

func (s Store) PackageName() string {
	if s.SubscriptionPackage != nil && s.SubscriptionPackage.Name != "" {
		return s.SubscriptionPackage.Name
	}
	return s.SubscriptionPlan
}

func (s Store) CityName() string {
	if s.City == nil {
		return ""
	}
	return *s.City
}

// StoreInput is the create payload: the store and the owner account created with it.
type StoreInput struct {
	Name                  string  `json:"name" validate:"required,min=2,max=120"`
	BusinessType          string  `json:"businessType" validate:"required"`
	Street                string  `json:"street,omitempty"`
	City                  string  `json:"city,omitempty"`
	State                 string  `json:"state,omitempty"`
	PostalCode            string  `json:"postalCode,omitempty"`
	Country               string  `json:"country,omitempty"`
	Phone                 string  `json:"phone,omitempty"`
	Email                 string  `json:"email,omitempty" validate:"omitempty,email"`
	Website               string  `json:"website,omitempty" validate:"omitempty,url"`
	OwnerName             string  `json:"ownerName" validate:"required"`
	OwnerEmail            string  `json:"ownerEmail" validate:"required,email"`
	OwnerPassword         string  `json:"ownerPassword" validate:"required,min=8"`
	SubscriptionPackageID *string `json:"subscriptionPackageId,omitempty"`
}

// StoreUpdate carries only the fields being changed.
type StoreUpdate struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	BusinessType *string `json:"businessType,omitempty"`
	Street       *string `json:"street,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	PostalCode   *string `json:"postalCode,omitempty"`
	Country      *string `json:"country,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
}
