package service

import (
	"context"
	"strings"
	"testing"

	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/calebmori/opsdesk/internal/store"
	"go.uber.org/zap"
)

func setupHRTest() (*HRService, *Registry, *mockOpLogStore, *Recorder) {
	registry := NewRegistry()
	opLog := &mockOpLogStore{}
	recorder := NewRecorder(opLog, 16, zap.NewNop())
	recorder.Start()
	svc := NewHRService(registry, recorder, zap.NewNop())
	return svc, registry, opLog, recorder
}

func TestHRService_CandidateScreening(t *testing.T) {
	svc, registry, opLog, recorder := setupHRTest()

	op, err := svc.Process(context.Background(), HRRequest{
		OperationType: "candidate_screening",
		Position:      "Data Analyst",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(op.OperationID, "hr_") {
		t.Fatalf("operation id missing domain prefix: %s", op.OperationID)
	}
	if op.ProcessedBy != domain.AgentHumanResources {
		t.Fatalf("processed_by = %s", op.ProcessedBy)
	}
	if op.CandidateID != "CAND-"+op.OperationID {
		t.Fatalf("candidate id = %s", op.CandidateID)
	}
	if op.Position != "Data Analyst" {
		t.Fatalf("position = %s, expected request value echoed", op.Position)
	}
	if op.Recommendation != "proceed_to_interview" {
		t.Fatalf("recommendation = %s", op.Recommendation)
	}
	if op.ScreeningScore != 0.87 || op.QualificationMatch != 0.92 {
		t.Fatal("screening scores not populated")
	}

	if registry.OperationsByAgent()[domain.AgentHumanResources] != 1 {
		t.Fatal("agent counter not incremented")
	}

	recorder.Stop()
	calls := opLog.calls()
	if len(calls) != 1 || calls[0].table != store.TableHROperations {
		t.Fatalf("unexpected persisted records: %+v", calls)
	}
}

func TestHRService_CandidateScreening_DefaultPosition(t *testing.T) {
	svc, _, _, recorder := setupHRTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), HRRequest{OperationType: "candidate_screening"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if op.Position != "Software Engineer" {
		t.Fatalf("default position = %s", op.Position)
	}
}

func TestHRService_PayrollProcessing(t *testing.T) {
	svc, _, _, recorder := setupHRTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), HRRequest{OperationType: "payroll_processing"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if op.EmployeesProcessed != 150 || op.TotalPayroll != 750000 {
		t.Fatal("payroll figures not populated")
	}
	if op.TaxCalculations != "completed" || op.DirectDeposits != "scheduled" || !op.ComplianceVerified {
		t.Fatal("payroll status fields not populated")
	}
}

func TestHRService_PerformanceReview(t *testing.T) {
	svc, _, _, recorder := setupHRTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), HRRequest{
		OperationType: "performance_review",
		EmployeeID:    "EMP-7781",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if op.EmployeeID != "EMP-7781" {
		t.Fatalf("employee id = %s", op.EmployeeID)
	}
	if op.RetentionRisk != "low" {
		t.Fatalf("retention risk = %s", op.RetentionRisk)
	}
	if len(op.DevelopmentRecommendations) != 2 {
		t.Fatal("development recommendations not populated")
	}
}

func TestHRService_PerformanceReview_DefaultEmployee(t *testing.T) {
	svc, _, _, recorder := setupHRTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), HRRequest{OperationType: "performance_review"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if op.EmployeeID != "EMP-001" {
		t.Fatalf("default employee id = %s", op.EmployeeID)
	}
}

func TestHRService_UnknownType_CommonFieldsOnly(t *testing.T) {
	svc, _, _, recorder := setupHRTest()
	defer recorder.Stop()

	op, err := svc.Process(context.Background(), HRRequest{OperationType: "offboarding"})
	if err != nil {
		t.Fatalf("unknown types still complete, got %v", err)
	}
	if op.CandidateID != "" || op.PayrollPeriod != "" || op.EmployeeID != "" {
		t.Fatal("unknown type must not carry subtype fields")
	}
	if op.Status != "completed" || op.AccuracyConfidence != 0.96 {
		t.Fatal("common fields missing")
	}
}

func TestHRService_MissingOperationType(t *testing.T) {
	svc, _, _, recorder := setupHRTest()
	defer recorder.Stop()

	_, err := svc.Process(context.Background(), HRRequest{})
	if err != ErrOperationTypeMissing {
		t.Fatalf("expected ErrOperationTypeMissing, got %v", err)
	}
}
