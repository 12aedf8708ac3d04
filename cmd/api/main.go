package main

import (
	"fmt"
	"net/http"

	"github.com/edupoint/edupoint-backend-go/internal/config"
	"github.com/edupoint/edupoint-backend-go/internal/domain/payroll"
	appHTTP "github.com/edupoint/edupoint-backend-go/internal/handler/http"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/jwt"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
	attendanceService "github.com/edupoint/edupoint-backend-go/internal/service/attendance"
	authService "github.com/edupoint/edupoint-backend-go/internal/service/auth"
	billingService "github.com/edupoint/edupoint-backend-go/internal/service/billing"
	"github.com/edupoint/edupoint-backend-go/internal/service/catalog"
	payrollService "github.com/edupoint/edupoint-backend-go/internal/service/payroll"
	reportService "github.com/edupoint/edupoint-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	teacherRepo := postgresql.NewTeacherRepository(db)
	classRepo := postgresql.NewClassRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	studentSvc := catalog.NewStudentService(studentRepo)
	teacherSvc := catalog.NewTeacherService(teacherRepo)
	classSvc := catalog.NewClassService(db, classRepo, studentRepo, teacherRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, classRepo)
	billingSvc := billingService.NewBillingService(db, invoiceRepo, ledgerRepo, studentRepo, classRepo, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(
		db, payrollRepo, teacherRepo, classRepo, attendanceRepo,
		payroll.SessionCountMode(cfg.Payroll.SessionCountMode),
	)
	reportSvc := reportService.NewReportService(reportRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Student:    appHTTP.NewStudentHandler(studentSvc),
		Teacher:    appHTTP.NewTeacherHandler(teacherSvc),
		Class:      appHTTP.NewClassHandler(classSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Billing:    appHTTP.NewBillingHandler(billingSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
