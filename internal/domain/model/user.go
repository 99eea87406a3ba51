package model

import "github.com/Taha-Raees/zetratech-front/internal/domain/enums"

type UserStore struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	StoreID   string     `json:"storeId,omitempty"`
	Store     *UserStore `json:"store,omitempty"`
	Role      enums.Role `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt string     `json:"createdAt"`
	LastLogin string     `json:"lastLogin,omitempty"`
}

func (u User) StoreName() string {
	if u.Store == nil {
		return ""
	}
	return u.Store.Name
}

type UserInput struct {
	Email    string     `json:"email" validate:"required,email"`
	Name     string     `json:"name,omitempty" validate:"omitempty,max=120"`
	Password string     `json:"password" validate:"required,min=8"`
	StoreID  string     `json:"storeId,omitempty"`
	Role     enums.Role `json:"role" validate:"required,oneof=ADMIN OWNER MANAGER STAFF"`
	IsActive bool       `json:"isActive"`
}

type UserUpdate struct {
	Email    *string     `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string     `json:"name,omitempty" validate:"omitempty,max=120"`
	Password *string     `json:"password,omitempty" validate:"omitempty,min=8"`
	StoreID  *string     `json:"storeId,omitempty"`
	Role     *enums.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN OWNER MANAGER STAFF"`
	IsActive *bool       `json:"isActive,omitempty"`
}
