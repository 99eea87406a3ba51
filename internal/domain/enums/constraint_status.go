package enums

type ConstraintStatus string

const (
	ConstraintStatusOK      ConstraintStatus = "OK"
	ConstraintStatusWarning ConstraintStatus = "WARNING"
	ConstraintStatusError   ConstraintStatus = "ERROR"
)
