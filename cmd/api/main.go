package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/techmire/payroll-backend-go/internal/config"
	appHTTP "github.com/techmire/payroll-backend-go/internal/handler/http"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
	"github.com/techmire/payroll-backend-go/internal/pkg/jwt"
	"github.com/techmire/payroll-backend-go/internal/pkg/storage"
	"github.com/techmire/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/techmire/payroll-backend-go/internal/service/attendance"
	authService "github.com/techmire/payroll-backend-go/internal/service/auth"
	employeeService "github.com/techmire/payroll-backend-go/internal/service/employee"
	fileService "github.com/techmire/payroll-backend-go/internal/service/file"
	payrollService "github.com/techmire/payroll-backend-go/internal/service/payroll"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	fileRepo := postgresql.NewFileRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	attendanceSvc := attendanceService.NewAttendanceService()
	fileSvc := fileService.NewFileService(db, fileRepo, fileStorage, attendanceSvc)
	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, fileSvc, attendanceSvc)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	fileHandler := appHTTP.NewFileHandler(fileSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg, jwtSvc, authHandler, employeeHandler, fileHandler, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
