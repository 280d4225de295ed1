package main

import (
	"fmt"
	"net/http"

	"github.com/siyanda-labs/contractor-backend-go/internal/config"
	appHTTP "github.com/siyanda-labs/contractor-backend-go/internal/handler/http"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/jwt"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
	analyticsService "github.com/siyanda-labs/contractor-backend-go/internal/service/analytics"
	serviceAuth "github.com/siyanda-labs/contractor-backend-go/internal/service/auth"
	contractService "github.com/siyanda-labs/contractor-backend-go/internal/service/contract"
	contractorService "github.com/siyanda-labs/contractor-backend-go/internal/service/contractor"
	invoiceService "github.com/siyanda-labs/contractor-backend-go/internal/service/invoice"
	organizationService "github.com/siyanda-labs/contractor-backend-go/internal/service/organization"
	projectService "github.com/siyanda-labs/contractor-backend-go/internal/service/project"
	supplierService "github.com/siyanda-labs/contractor-backend-go/internal/service/supplier"
	timesheetService "github.com/siyanda-labs/contractor-backend-go/internal/service/timesheet"
	withholdingService "github.com/siyanda-labs/contractor-backend-go/internal/service/withholding"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	sequenceRepo := postgresql.NewSequenceRepository(db)
	supplierRepo := postgresql.NewSupplierRepository(db)
	contractorRepo := postgresql.NewContractorRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	engagementRepo := postgresql.NewEngagementRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	classificationRepo := postgresql.NewClassificationRepository(db)
	instructionRepo := postgresql.NewInstructionRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calculator := withholdingService.NewCalculator(cfg.Billing.UIFCapMonthly)

	authSvc := serviceAuth.NewAuthService(db, JWTService, JWTRepository, userRepo, organizationRepo)
	organizationSvc := organizationService.NewOrganizationService(db, organizationRepo)
	supplierSvc := supplierService.NewSupplierService(db, supplierRepo)
	contractorSvc := contractorService.NewContractorService(db, contractorRepo, supplierRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo)
	contractSvc := contractService.NewContractService(db, contractRepo, engagementRepo, supplierRepo, contractorRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, contractorRepo, projectRepo)
	invoiceSvc := invoiceService.NewInvoiceService(
		db,
		invoiceRepo,
		timesheetRepo,
		contractorRepo,
		engagementRepo,
		sequenceRepo,
		cfg.Billing.TaxRate,
	)
	withholdingSvc := withholdingService.NewWithholdingService(
		db,
		classificationRepo,
		instructionRepo,
		contractorRepo,
		sequenceRepo,
		calculator,
	)
	analyticsSvc := analyticsService.NewAnalyticsService(db, analyticsRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	organizationHandler := appHTTP.NewOrganizationHandler(organizationSvc)
	supplierHandler := appHTTP.NewSupplierHandler(supplierSvc)
	contractorHandler := appHTTP.NewContractorHandler(contractorSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	contractHandler := appHTTP.NewContractHandler(contractSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)
	withholdingHandler := appHTTP.NewWithholdingHandler(withholdingSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		organizationHandler,
		supplierHandler,
		contractorHandler,
		projectHandler,
		contractHandler,
		timesheetHandler,
		invoiceHandler,
		withholdingHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
