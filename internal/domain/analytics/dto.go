package analytics

import "github.com/shopspring/decimal"

type TimesheetStatusSummary struct {
	Status     string          `json:"status"`
	Count      int64           `json:"count"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

type InvoiceStatusSummary struct {
	Status      string          `json:"status"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type WithholdingTypeSummary struct {
	WithholdingType string          `json:"withholding_type"`
	TaxYear         int             `json:"tax_year"`
	Count           int64           `json:"count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalWithheld   decimal.Decimal `json:"total_withheld"`
}

type OrganizationSummaryResponse struct {
	Timesheets  []TimesheetStatusSummary `json:"timesheets"`
	Invoices    []InvoiceStatusSummary   `json:"invoices"`
	Withholding []WithholdingTypeSummary `json:"withholding"`
}
