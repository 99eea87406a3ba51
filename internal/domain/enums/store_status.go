package enums

type StoreStatus string

const (
	StoreStatusActive    StoreStatus = "active"
	StoreStatusSuspended StoreStatus = "suspended"
)

func (s StoreStatus) Valid() bool {
	return s == StoreStatusActive || s == StoreStatusSuspended
}
