package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// operationTables is the set of tables the generic logger may write to.
// Column names come from the caller; table names must be known up front so
// the dynamically built statement never interpolates untrusted identifiers.
var operationTables = map[string]struct{}{
	TableFinancialOperations: {},
	TableHROperations:        {},
	TableSupportTickets:      {},
}

// OperationLogStore appends operation records to the per-domain tables. It is
// the single write path for those tables.
type OperationLogStore struct {
	db *pgxpool.Pool
}

func NewOperationLogStore(db *pgxpool.Pool) *OperationLogStore {
	return &OperationLogStore{db: db}
}

func (s *OperationLogStore) Insert(ctx context.Context, table string, fields []domain.OperationField) error {
	query, args, err := buildInsert(table, fields)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// buildInsert assembles a parameterized INSERT from the ordered field list.
func buildInsert(table string, fields []domain.OperationField) (string, []any, error) {
	if _, ok := operationTables[table]; !ok {
		return "", nil, fmt.Errorf("unknown operation table %q", table)
	}
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("no fields for insert into %s", table)
	}

	cols := make([]string, 0, len(fields))
	placeholders := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		cols = append(cols, f.Column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, f.Value)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return query, args, nil
}
