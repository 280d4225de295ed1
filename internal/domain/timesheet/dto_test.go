package timesheet

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateTimesheetRequest {
	return CreateTimesheetRequest{
		ContractorID: "0192a1b2-3c4d-7e5f-8901-234567890abc",
		PeriodStart:  "2025-03-01",
		PeriodEnd:    "2025-03-31",
		Entries: []EntryRequest{
			{WorkDate: "2025-03-03", Hours: decimal.NewFromInt(8)},
			{WorkDate: "2025-03-04", Hours: decimal.RequireFromString("7.5")},
		},
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs.ToMap()
}

func TestCreateTimesheetRequestValidate(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateTimesheetRequestMissingContractor(t *testing.T) {
	req := validCreateRequest()
	req.ContractorID = ""

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "contractor_id")
}

func TestCreateTimesheetRequestPeriodOrder(t *testing.T) {
	req := validCreateRequest()
	req.PeriodStart = "2025-03-31"
	req.PeriodEnd = "2025-03-01"
	req.Entries = nil

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "period_end")
}

func TestCreateTimesheetRequestEntryOutsidePeriod(t *testing.T) {
	req := validCreateRequest()
	req.Entries = []EntryRequest{
		{WorkDate: "2025-04-01", Hours: decimal.NewFromInt(8)},
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "entries[0].work_date")
}

func TestCreateTimesheetRequestEntryHours(t *testing.T) {
	req := validCreateRequest()
	req.Entries = []EntryRequest{
		{WorkDate: "2025-03-03", Hours: decimal.Zero},
		{WorkDate: "2025-03-04", Hours: decimal.NewFromInt(25)},
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "entries[0].hours")
	assert.Contains(t, fields, "entries[1].hours")
}

func TestCreateTimesheetRequestBadDates(t *testing.T) {
	req := validCreateRequest()
	req.PeriodStart = "03/01/2025"
	req.Entries = nil

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "period_start")
}
