package model

import (
	"encoding/json"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
)

type AuditLog struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Action     string          `json:"action"`
	UserID     string          `json:"userId,omitempty"`
	User       *User           `json:"user,omitempty"`
	StoreID    string          `json:"storeId,omitempty"`
	OldValues  json.RawMessage `json:"oldValues,omitempty"`
	NewValues  json.RawMessage `json:"newValues,omitempty"`
	IPAddress  string          `json:"ipAddress,omitempty"`
	UserAgent  string          `json:"userAgent,omitempty"`
	CreatedAt  string          `json:"createdAt"`
}

func (l AuditLog) Actor() string {
	if l.User != nil && l.User.Email != "" {
		return l.User.Email
	}
	if l.UserID != "" {
		return l.UserID
	}
	return "system"
}

type AuditFilter struct {
	Limit      int
	Offset     int
	EntityType string
	Action     string
	UserID     string
}

type AuditExportParams struct {
	Format     enums.ExportFormat `json:"format,omitempty" validate:"omitempty,oneof=csv json"`
	EntityType string             `json:"entityType,omitempty"`
	Action     string             `json:"action,omitempty"`
	UserID     string             `json:"userId,omitempty"`
	StartDate  string             `json:"startDate,omitempty"`
	EndDate    string             `json:"endDate,omitempty"`
}

// ExportDocument is the raw export body as the backend produced it.
type ExportDocument struct {
	ContentType string
	Data        []byte
}
