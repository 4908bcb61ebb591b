// Package export pushes extracted purchase orders into RFMS. Orders in a
// billing group are created strictly one after the other so the second
// order is only derived once the first exists.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atozflooring/po-extract/internal/extract"
	"github.com/atozflooring/po-extract/internal/payload"
)

// BillingGroup describes the optional second order that shares invoicing
// with the primary one.
type BillingGroup struct {
	POSuffix     string
	ScopeOfWorks string
	SecondValue  string
}

// Request is one export job: an extracted record, the operator-verified
// sold-to party, optional operator corrections to the extracted fields
// and an optional billing group.
type Request struct {
	Record  *extract.Record
	SoldTo  payload.Party
	Manual  *extract.Record
	Billing *BillingGroup
}

// Result reports what was created in RFMS.
type Result struct {
	PrimaryID string
	SecondID  string
	Linked    bool
}

// Service runs the export flow against an OrderAPI.
type Service struct {
	builder *payload.Builder
	api     OrderAPI
	logger  *slog.Logger
}

func NewService(builder *payload.Builder, api OrderAPI, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{builder: builder, api: api, logger: logger}
}

// Export creates the primary order, then, for billing groups, the second
// order and the link between them. A primary failure stops everything;
// nothing about the second order is even built until the primary id is
// back from RFMS.
func (s *Service) Export(ctx context.Context, req Request) (*Result, error) {
	rec := req.Record
	if req.Manual != nil {
		merged := *rec
		merged.Override(req.Manual)
		rec = &merged
	}

	order, err := s.builder.BuildOrder(rec, req.SoldTo, nil)
	if err != nil {
		return nil, fmt.Errorf("build order: %w", err)
	}

	primaryID, _, err := s.api.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create primary order: %w", err)
	}
	result := &Result{PrimaryID: primaryID}

	if req.Billing == nil {
		return result, nil
	}

	second := s.builder.BuildSecondOrder(order, rec, req.Billing.ScopeOfWorks, req.Billing.POSuffix, req.Billing.SecondValue)
	secondID, _, err := s.api.CreateOrder(ctx, second)
	if err != nil {
		return result, fmt.Errorf("create second order: %w", err)
	}
	result.SecondID = secondID

	if err := s.api.LinkOrders(ctx, []string{primaryID, secondID}); err != nil {
		s.logger.Warn("orders created but not linked",
			"primary_id", primaryID, "second_id", secondID, "error", err)
		return result, fmt.Errorf("link orders: %w", err)
	}
	result.Linked = true

	s.logger.Info("export complete",
		"primary_id", primaryID, "second_id", secondID, "po_number", order.PONumber)
	return result, nil
}
