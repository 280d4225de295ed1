package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/invoice"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
)

// builder assembles a draft invoice from approved timesheets. All checks
// happen before anything is written; the caller persists the result
// inside its transaction.
type builder struct {
	timesheetRepo  timesheet.TimesheetRepository
	contractorRepo contractor.ContractorRepository
	engagementRepo contract.EngagementRepository
	sequenceRepo   postgresql.SequenceRepository
	taxRate        decimal.Decimal
}

func (b *builder) buildFromTimesheets(ctx context.Context, organizationID string, timesheetIDs []string) (invoice.Invoice, error) {
	timesheets, err := b.timesheetRepo.GetByIDs(ctx, timesheetIDs, organizationID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	if len(timesheets) != len(timesheetIDs) {
		return invoice.Invoice{}, timesheet.ErrTimesheetNotFound
	}
	if len(timesheets) == 0 {
		return invoice.Invoice{}, invoice.ErrNoTimesheets
	}

	for _, ts := range timesheets {
		if ts.Status != timesheet.TimesheetStatusApproved {
			return invoice.Invoice{}, invoice.ErrTimesheetsNotApproved
		}
	}

	linked, err := b.timesheetRepo.FindLinkedToOpenInvoice(ctx, timesheetIDs, organizationID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	if len(linked) > 0 {
		return invoice.Invoice{}, invoice.ErrTimesheetsInvoiced
	}

	// Resolve each contractor once; the batch must collapse to a single
	// supplier and a single currency.
	contractors := make(map[string]contractor.Contractor)
	engagements := make(map[string]contract.Engagement)
	var supplierID, currency string

	for _, ts := range timesheets {
		if _, ok := contractors[ts.ContractorID]; ok {
			continue
		}

		c, err := b.contractorRepo.GetByID(ctx, ts.ContractorID, organizationID)
		if err != nil {
			return invoice.Invoice{}, err
		}
		contractors[c.ID] = c

		if supplierID == "" {
			supplierID = c.SupplierID
		} else if supplierID != c.SupplierID {
			return invoice.Invoice{}, invoice.ErrTimesheetsMixedParties
		}

		active, err := b.engagementRepo.GetActiveByContractorID(ctx, c.ID, organizationID)
		if err != nil {
			return invoice.Invoice{}, err
		}
		switch len(active) {
		case 0:
			return invoice.Invoice{}, fmt.Errorf("%w: %s", invoice.ErrNoActiveEngagement, c.FullName)
		case 1:
			engagements[c.ID] = active[0]
		default:
			return invoice.Invoice{}, fmt.Errorf("%w: %s", invoice.ErrAmbiguousEngagement, c.FullName)
		}

		if currency == "" {
			currency = active[0].Currency
		} else if currency != active[0].Currency {
			return invoice.Invoice{}, invoice.ErrMixedCurrencies
		}
	}

	var items []invoice.LineItem
	periodStart, periodEnd := timesheets[0].PeriodStart, timesheets[0].PeriodEnd

	for _, ts := range timesheets {
		if ts.PeriodStart.Before(periodStart) {
			periodStart = ts.PeriodStart
		}
		if ts.PeriodEnd.After(periodEnd) {
			periodEnd = ts.PeriodEnd
		}

		c := contractors[ts.ContractorID]
		e := engagements[ts.ContractorID]

		quantity, unitPrice := LineQuantityPrice(e.RateType, e.Rate, ts.TotalHours)
		tsID := ts.ID
		items = append(items, invoice.LineItem{
			TimesheetID: &tsID,
			Description: lineDescription(c.FullName, e.RoleTitle, e.RateType, ts.TotalHours, quantity),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Amount:      quantity.Mul(unitPrice).Round(2),
		})
	}

	subtotal, taxAmount, totalAmount := invoice.Totals(items, b.taxRate)

	seq, err := b.sequenceRepo.Next(ctx, organizationID, "invoice", time.Now().Year())
	if err != nil {
		return invoice.Invoice{}, err
	}

	return invoice.Invoice{
		OrganizationID: organizationID,
		SupplierID:     supplierID,
		InvoiceNumber:  fmt.Sprintf("INV-%d-%06d", time.Now().Year(), seq),
		Currency:       currency,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		LineItems:      items,
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		TotalAmount:    totalAmount,
		Status:         invoice.InvoiceStatusDraft,
		TimesheetIDs:   timesheetIDs,
	}, nil
}

func lineDescription(contractorName, roleTitle string, rateType contract.RateType, hours, quantity decimal.Decimal) string {
	switch rateType {
	case contract.RateTypeDaily:
		return fmt.Sprintf("%s - %s (%s days)", contractorName, roleTitle, quantity.StringFixed(2))
	case contract.RateTypeFixed:
		return fmt.Sprintf("%s - %s (fixed fee)", contractorName, roleTitle)
	default:
		return fmt.Sprintf("%s - %s (%s hours)", contractorName, roleTitle, hours.String())
	}
}
