package app

import (
	"chequebook/internal/attendance"
	"chequebook/internal/backup"
	"chequebook/internal/cheque"
	"chequebook/internal/customer"
	"chequebook/internal/debt"
	"chequebook/internal/employee"
	"chequebook/internal/middleware"
	"chequebook/internal/payee"
	"chequebook/internal/payroll"
	"chequebook/internal/store"
	"chequebook/internal/storesale"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB, cfg Config) {
	router.Use(middleware.ContextLogger(nil))

	// --- Repositories ---
	payeeRepo := payee.NewRepository(db)
	customerRepo := customer.NewRepository(db)
	storeRepo := store.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	storeSaleRepo := storesale.NewRepository(db)
	chequeRepo := cheque.NewRepository(db)
	debtRepo := debt.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)

	// --- Services ---
	payeeService := payee.NewService(payeeRepo)
	customerService := customer.NewService(customerRepo)
	storeService := store.NewService(storeRepo)
	employeeService := employee.NewService(employeeRepo)
	storeSaleService := storesale.NewService(storeSaleRepo, storeRepo, employeeRepo)
	chequeService := cheque.NewService(chequeRepo, payeeRepo, cfg.ChequeNoFloor)
	debtService := debt.NewService(debtRepo, customerRepo, employeeRepo)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo)
	payrollService := payroll.NewService(payrollRepo, employeeRepo, attendanceRepo, debtRepo)
	backupService := backup.NewService(db)

	// --- Handlers ---
	payeeHandler := payee.NewHandler(payeeService)
	customerHandler := customer.NewHandler(customerService)
	storeHandler := store.NewHandler(storeService)
	employeeHandler := employee.NewHandler(employeeService)
	storeSaleHandler := storesale.NewHandler(storeSaleService)
	chequeHandler := cheque.NewHandler(chequeService)
	debtHandler := debt.NewHandler(debtService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandler(payrollService)
	backupHandler := backup.NewHandler(backupService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		payee.RegisterRoutes(api, payeeHandler)
		customer.RegisterRoutes(api, customerHandler)
		store.RegisterRoutes(api, storeHandler)
		employee.RegisterRoutes(api, employeeHandler)
		storesale.RegisterRoutes(api, storeSaleHandler)
		cheque.RegisterRoutes(api, chequeHandler)
		debt.RegisterRoutes(api, debtHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		payroll.RegisterRoutes(api, payrollHandler)
		backup.RegisterRoutes(api, backupHandler)
	}
}
