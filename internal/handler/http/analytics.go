package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/analytics"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	OrganizationSummary(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// OrganizationSummary implements AnalyticsHandler. An optional
// tax_year query parameter narrows the withholding totals.
func (a *AnalyticsHandlerImpl) OrganizationSummary(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var taxYear *int
	if raw := r.URL.Query().Get("tax_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "tax_year must be a valid year", nil)
			return
		}
		taxYear = &year
	}

	summary, err := a.analyticsService.GetOrganizationSummary(r.Context(), organizationID, taxYear)
	if err != nil {
		slog.Error("Organization summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
