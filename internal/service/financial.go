package service

import (
	"context"
	"errors"
	"time"

	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/calebmori/opsdesk/internal/store"
	"go.uber.org/zap"
)

var ErrOperationTypeMissing = errors.New("operation_type is required")

// Fabricated result constants for financial operations. Nothing here is
// computed from the request beyond echoing optional fields.
const (
	financialConfidence     = 0.999
	financialProcessingTime = "0.3 seconds"

	defaultInvoiceAmount   = 1500.00
	defaultExpenseAmount   = 250.00
	defaultExpenseCategory = "business_travel"
)

type FinancialRequest struct {
	OperationType string
	Amount        float64
	Description   string
	Category      string
}

type FinancialService struct {
	registry *Registry
	recorder *Recorder
	logger   *zap.Logger
}

func NewFinancialService(registry *Registry, recorder *Recorder, logger *zap.Logger) *FinancialService {
	return &FinancialService{registry: registry, recorder: recorder, logger: logger}
}

// Process synthesizes a financial operation result, bumps the counters and
// hands a record to the recorder. The returned result is complete regardless
// of whether the record ever reaches the database.
func (s *FinancialService) Process(ctx context.Context, req FinancialRequest) (*domain.FinancialOperation, error) {
	if req.OperationType == "" {
		return nil, ErrOperationTypeMissing
	}

	now := time.Now().UTC()
	op := &domain.FinancialOperation{
		OperationID:        newOperationID("fin"),
		OperationType:      req.OperationType,
		Status:             "completed",
		ProcessedBy:        domain.AgentFinancialOperations,
		ProcessingTime:     financialProcessingTime,
		AccuracyConfidence: financialConfidence,
		Timestamp:          now,
	}

	switch domain.FinancialOpType(req.OperationType) {
	case domain.FinancialInvoiceProcessing:
		op.InvoiceNumber = "INV-" + op.OperationID
		op.Amount = req.Amount
		if op.Amount == 0 {
			op.Amount = defaultInvoiceAmount
		}
		op.DueDate = now.AddDate(0, 0, 30).Format(time.RFC3339)
		op.PaymentTerms = "Net 30"
		op.TaxCalculated = true
		op.ComplianceChecked = true

	case domain.FinancialExpenseReport:
		op.ExpenseID = "EXP-" + op.OperationID
		op.Amount = req.Amount
		if op.Amount == 0 {
			op.Amount = defaultExpenseAmount
		}
		op.Category = req.Category
		if op.Category == "" {
			op.Category = defaultExpenseCategory
		}
		op.ApprovalStatus = "auto_approved"
		op.ReimbursementScheduled = true

	case domain.FinancialCashFlowPrediction:
		op.PredictionPeriod = "90 days"
		op.PredictedCashFlow = 2500000
		op.ConfidenceLevel = 0.94
		op.KeyFactors = []string{"seasonal_trends", "payment_cycles", "expense_patterns"}
		op.Recommendations = []string{"optimize_payment_terms", "accelerate_collections"}

	default:
		// Unknown operation types still complete; the result carries
		// only the common fields.
		s.logger.Debug("unrecognized financial operation type",
			zap.String("operation_type", req.OperationType))
	}

	if err := s.registry.RecordOperation(domain.AgentFinancialOperations); err != nil {
		return nil, err
	}

	s.recorder.Record(store.TableFinancialOperations, []domain.OperationField{
		{Column: "operation_id", Value: op.OperationID},
		{Column: "operation_type", Value: op.OperationType},
		{Column: "status", Value: op.Status},
		{Column: "amount", Value: op.Amount},
		{Column: "description", Value: req.Description},
		{Column: "category", Value: op.Category},
		{Column: "processed_by", Value: op.ProcessedBy},
		{Column: "accuracy_confidence", Value: op.AccuracyConfidence},
		{Column: "created_at", Value: op.Timestamp},
	})

	return op, nil
}
