package model

import "github.com/Taha-Raees/zetratech-front/internal/domain/enums"

type DatabaseConstraint struct {
	Table          string                 `json:"table"`
	Column         string                 `json:"column"`
	ConstraintType string                 `json:"constraintType"`
	Details        string                 `json:"details"`
	Status         enums.ConstraintStatus `json:"status"`
}

type RecycleBinItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	DeletedAt string `json:"deletedAt"`
	DeletedBy string `json:"deletedBy,omitempty"`
}

type RecycleBinRef struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`
}
