package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/middleware"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	organizationHandler OrganizationHandler,
	supplierHandler SupplierHandler,
	contractorHandler ContractorHandler,
	projectHandler ProjectHandler,
	contractHandler ContractHandler,
	timesheetHandler TimesheetHandler,
	invoiceHandler InvoiceHandler,
	withholdingHandler WithholdingHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "contractor-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/organizations/my", func(r chi.Router) {
				r.Get("/", organizationHandler.Get)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Put("/", organizationHandler.Update)
				})
			})

			r.Route("/suppliers", func(r chi.Router) {
				r.Get("/", supplierHandler.List)
				r.Post("/", supplierHandler.Create)
				r.Get("/{id}", supplierHandler.GetByID)
				r.Put("/{id}", supplierHandler.Update)
				r.Delete("/{id}", supplierHandler.Delete)
			})

			r.Route("/contractors", func(r chi.Router) {
				r.Get("/", contractorHandler.List)
				r.Post("/", contractorHandler.Create)
				r.Get("/{id}", contractorHandler.GetByID)
				r.Put("/{id}", contractorHandler.Update)
				r.Delete("/{id}", contractorHandler.Delete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/{id}", projectHandler.GetByID)
				r.Put("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/", contractHandler.List)
				r.Post("/", contractHandler.Create)
				r.Get("/{id}", contractHandler.GetByID)
				r.Put("/{id}", contractHandler.Update)
				r.Post("/{id}/sign", contractHandler.Sign)
				r.Post("/{id}/terminate", contractHandler.Terminate)
				r.Delete("/{id}", contractHandler.Delete)

				r.Get("/{id}/engagements", contractHandler.ListEngagements)
				r.Post("/{id}/engagements", contractHandler.CreateEngagement)
			})

			r.Route("/engagements", func(r chi.Router) {
				r.Get("/{id}", contractHandler.GetEngagement)
				r.Post("/{id}/deactivate", contractHandler.DeactivateEngagement)
				r.Delete("/{id}", contractHandler.DeleteEngagement)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", timesheetHandler.List)
				r.Post("/", timesheetHandler.Create)
				r.Get("/{id}", timesheetHandler.GetByID)
				r.Put("/{id}", timesheetHandler.Update)
				r.Post("/{id}/submit", timesheetHandler.Submit)
				r.Delete("/{id}", timesheetHandler.Delete)

				// Manager, finance, or owner
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireTimesheetApprover)
					r.Post("/{id}/approve", timesheetHandler.Approve)
					r.Post("/{id}/reject", timesheetHandler.Reject)
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", invoiceHandler.List)
				r.Post("/", invoiceHandler.Build)
				r.Get("/{id}", invoiceHandler.GetByID)
				r.Put("/{id}", invoiceHandler.Update)
				r.Post("/{id}/submit", invoiceHandler.Submit)
				r.Post("/{id}/cancel", invoiceHandler.Cancel)
				r.Delete("/{id}", invoiceHandler.Delete)

				// Finance or owner
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireFinance)
					r.Post("/{id}/approve", invoiceHandler.Approve)
					r.Post("/{id}/reject", invoiceHandler.Reject)
					r.Post("/{id}/pay", invoiceHandler.MarkPaid)
					r.Post("/{id}/void", invoiceHandler.Void)
				})
			})

			// Finance or owner
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireFinance)

				r.Route("/tax-classifications", func(r chi.Router) {
					r.Get("/", withholdingHandler.ListClassifications)
					r.Post("/", withholdingHandler.CreateClassification)
					r.Get("/{id}", withholdingHandler.GetClassification)
					r.Delete("/{id}", withholdingHandler.DeleteClassification)
				})

				r.Route("/withholding-instructions", func(r chi.Router) {
					r.Get("/", withholdingHandler.ListInstructions)
					r.Post("/", withholdingHandler.CreateInstruction)
					r.Get("/{id}", withholdingHandler.GetInstruction)
					r.Post("/{id}/sync/start", withholdingHandler.StartSync)
					r.Post("/{id}/sync/complete", withholdingHandler.CompleteSync)
					r.Post("/{id}/sync/fail", withholdingHandler.FailSync)
					r.Post("/{id}/sync/retry", withholdingHandler.RetrySync)
					r.Delete("/{id}", withholdingHandler.DeleteInstruction)
				})
			})

			r.Get("/analytics/summary", analyticsHandler.OrganizationSummary)
		})
	})
	return r
}
