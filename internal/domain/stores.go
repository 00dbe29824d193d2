package domain

import "context"

// OperationField is one column/value pair of an operation record. Order is
// significant: the insert is built from the fields in caller-provided order.
type OperationField struct {
	Column string
	Value  any
}

// OperationLogStore is the single append path for the per-domain operation
// tables. Callers must not write to those tables any other way.
type OperationLogStore interface {
	Insert(ctx context.Context, table string, fields []OperationField) error
}

type IntegrationStore interface {
	Upsert(ctx context.Context, in *Integration) error
	List(ctx context.Context) ([]Integration, error)
}

type MetricsStore interface {
	Insert(ctx context.Context, snap *MetricsSnapshot) error
}
