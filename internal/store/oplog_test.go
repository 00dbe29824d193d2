package store

import (
	"testing"

	"github.com/calebmori/opsdesk/internal/domain"
)

func TestBuildInsert(t *testing.T) {
	fields := []domain.OperationField{
		{Column: "operation_id", Value: "fin_abc123"},
		{Column: "operation_type", Value: "invoice_processing"},
		{Column: "amount", Value: 1500.00},
	}

	query, args, err := buildInsert(TableFinancialOperations, fields)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "INSERT INTO financial_operations (operation_id, operation_type, amount) VALUES ($1, $2, $3)"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	// Args follow caller-provided field order.
	if args[0] != "fin_abc123" || args[1] != "invoice_processing" || args[2] != 1500.00 {
		t.Fatalf("args out of order: %v", args)
	}
}

func TestBuildInsert_AllOperationTables(t *testing.T) {
	fields := []domain.OperationField{{Column: "status", Value: "completed"}}

	for _, table := range []string{TableFinancialOperations, TableHROperations, TableSupportTickets} {
		if _, _, err := buildInsert(table, fields); err != nil {
			t.Fatalf("table %s rejected: %v", table, err)
		}
	}
}

func TestBuildInsert_UnknownTable(t *testing.T) {
	fields := []domain.OperationField{{Column: "status", Value: "completed"}}

	// Only the operation tables go through the generic logger; everything
	// else, including the tables with dedicated stores, is rejected.
	for _, table := range []string{"audit_log", TableAPIIntegrations, TableSystemMetrics, "users; DROP TABLE users"} {
		if _, _, err := buildInsert(table, fields); err == nil {
			t.Fatalf("table %q should be rejected", table)
		}
	}
}

func TestBuildInsert_NoFields(t *testing.T) {
	if _, _, err := buildInsert(TableFinancialOperations, nil); err == nil {
		t.Fatal("expected error for empty field list")
	}
}
