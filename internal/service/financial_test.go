package service

import (
	"context"
	"strings"
	"testing"

	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/calebmori/opsdesk/internal/store"
	"go.uber.org/zap"
)

func setupFinancialTest() (*FinancialService, *Registry, *mockOpLogStore, *Recorder) {
	registry := NewRegistry()
	opLog := &mockOpLogStore{}
	recorder := NewRecorder(opLog, 16, zap.NewNop())
	recorder.Start()
	svc := NewFinancialService(registry, recorder, zap.NewNop())
	return svc, registry, opLog, recorder
}

func TestFinancialService_InvoiceProcessing(t *testing.T) {
	svc, registry, opLog, recorder := setupFinancialTest()

	op, err := svc.Process(context.Background(), FinancialRequest{
		OperationType: "invoice_processing",
		Amount:        820.50,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(op.OperationID, "fin_") {
		t.Fatalf("operation id missing domain prefix: %s", op.OperationID)
	}
	if op.Status != "completed" {
		t.Fatalf("status = %s", op.Status)
	}
	if op.ProcessedBy != domain.AgentFinancialOperations {
		t.Fatalf("processed_by = %s", op.ProcessedBy)
	}
	if op.InvoiceNumber != "INV-"+op.OperationID {
		t.Fatalf("invoice number = %s", op.InvoiceNumber)
	}
	if op.Amount != 820.50 {
		t.Fatalf("amount = %f, expected request amount echoed", op.Amount)
	}
	if op.PaymentTerms != "Net 30" || !op.TaxCalculated || !op.ComplianceChecked {
		t.Fatal("invoice fields not populated")
	}
	if op.DueDate == "" {
		t.Fatal("due date not set")
	}

	if registry.TotalOperations() != 1 {
		t.Fatalf("global counter = %d", registry.TotalOperations())
	}
	if registry.OperationsByAgent()[domain.AgentFinancialOperations] != 1 {
		t.Fatal("agent counter not incremented")
	}

	recorder.Stop()
	calls := opLog.calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(calls))
	}
	if calls[0].table != store.TableFinancialOperations {
		t.Fatalf("record table = %s", calls[0].table)
	}
	if calls[0].fieldValue("operation_id") != op.OperationID {
		t.Fatal("persisted record does not carry the operation id")
	}
}

func TestFinancialService_InvoiceDefaultAmount(t *testing.T) {
	svc, _, _, recorder := setupFinancialTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), FinancialRequest{OperationType: "invoice_processing"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if op.Amount != 1500.00 {
		t.Fatalf("default invoice amount = %f", op.Amount)
	}
}

func TestFinancialService_ExpenseReport(t *testing.T) {
	svc, _, _, recorder := setupFinancialTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), FinancialRequest{OperationType: "expense_report"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if op.ExpenseID != "EXP-"+op.OperationID {
		t.Fatalf("expense id = %s", op.ExpenseID)
	}
	if op.Amount != 250.00 {
		t.Fatalf("default expense amount = %f", op.Amount)
	}
	if op.Category != "business_travel" {
		t.Fatalf("default category = %s", op.Category)
	}
	if op.ApprovalStatus != "auto_approved" || !op.ReimbursementScheduled {
		t.Fatal("expense fields not populated")
	}
}

func TestFinancialService_CashFlowPrediction(t *testing.T) {
	svc, _, _, recorder := setupFinancialTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), FinancialRequest{OperationType: "cash_flow_prediction"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if op.PredictionPeriod != "90 days" {
		t.Fatalf("prediction period = %s", op.PredictionPeriod)
	}
	if op.PredictedCashFlow != 2500000 {
		t.Fatalf("predicted cash flow = %d", op.PredictedCashFlow)
	}
	if op.ConfidenceLevel != 0.94 {
		t.Fatalf("confidence level = %f", op.ConfidenceLevel)
	}
	if len(op.KeyFactors) != 3 || len(op.Recommendations) != 2 {
		t.Fatal("prediction lists not populated")
	}
}

func TestFinancialService_UnknownType_CommonFieldsOnly(t *testing.T) {
	svc, registry, _, recorder := setupFinancialTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), FinancialRequest{OperationType: "tax_audit"})
	if err != nil {
		t.Fatalf("unknown types still complete, got %v", err)
	}

	if op.OperationID == "" || op.Status != "completed" || op.ProcessedBy == "" {
		t.Fatal("common fields missing")
	}
	if op.InvoiceNumber != "" || op.ExpenseID != "" || op.PredictionPeriod != "" || op.Amount != 0 {
		t.Fatal("unknown type must not carry subtype fields")
	}

	// The counter still moves: the operation "completed".
	if registry.TotalOperations() != 1 {
		t.Fatal("unknown type must still count as an operation")
	}
}

func TestFinancialService_MissingOperationType(t *testing.T) {
	svc, registry, _, recorder := setupFinancialTest()
	defer recorder.Stop()

	_, err := svc.Process(context.Background(), FinancialRequest{})
	if err != ErrOperationTypeMissing {
		t.Fatalf("expected ErrOperationTypeMissing, got %v", err)
	}
	if registry.TotalOperations() != 0 {
		t.Fatal("rejected request must not move counters")
	}
}

func TestFinancialService_UniqueOperationIDs(t *testing.T) {
	svc, _, _, recorder := setupFinancialTest()
	defer recorder.Stop()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		op, err := svc.Process(context.Background(), FinancialRequest{OperationType: "expense_report"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if seen[op.OperationID] {
			t.Fatalf("duplicate operation id %s", op.OperationID)
		}
		seen[op.OperationID] = true
	}
}
