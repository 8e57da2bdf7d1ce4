package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/auth"
	"github.com/BruksfildServices01/agenda-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/agenda-api/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/agenda-api/internal/usecase/dashboard"
	"github.com/BruksfildServices01/agenda-api/internal/usecase/photo"
	ucProfessional "github.com/BruksfildServices01/agenda-api/internal/usecase/professional"
	ucService "github.com/BruksfildServices01/agenda-api/internal/usecase/service"
	ucUser "github.com/BruksfildServices01/agenda-api/internal/usecase/user"
)

// Deps reúne os singletons criados no main.
type Deps struct {
	DB       *gorm.DB
	Log      *logger.Logger
	Tokens   *auth.Tokens
	Audit    *audit.Dispatcher
	Photos   photo.Store
	Cache    ucProfessional.Cache
	Location *time.Location

	// CheckEmailDomain valida o domínio no cadastro; nil desativa.
	CheckEmailDomain func(email string) bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.BodyLimit(middleware.DefaultMaxBodyBytes))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB, d.Log)
	professionalRepo := infraRepo.NewProfessionalGormRepository(d.DB, d.Log)
	clientRepo := infraRepo.NewClientGormRepository(d.DB, d.Log)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB, d.Log)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB, d.Log)

	uploader := photo.NewUploader(d.Photos, d.Log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		ucUser.NewRegister(userRepo, d.Tokens, d.Audit, d.CheckEmailDomain),
		ucUser.NewLogin(userRepo, d.Tokens),
		ucUser.NewListUsers(userRepo),
		ucUser.NewGetUser(userRepo),
		ucUser.NewUpdateUser(userRepo, d.Audit),
		ucUser.NewDeleteUser(userRepo, d.Audit),
		d.Log,
	)

	professionalHandler := handlers.NewProfessionalHandler(handlers.ProfessionalUseCases{
		Create:        ucProfessional.NewCreate(professionalRepo, userRepo, uploader, d.Audit),
		Update:        ucProfessional.NewUpdate(professionalRepo, uploader, d.Audit),
		Get:           ucProfessional.NewGet(professionalRepo),
		List:          ucProfessional.NewList(professionalRepo),
		Delete:        ucProfessional.NewDelete(professionalRepo, uploader, d.Cache, d.Audit),
		ListServices:  ucProfessional.NewListServices(professionalRepo, d.Cache),
		AddService:    ucProfessional.NewAddService(professionalRepo, serviceRepo, d.Cache, d.Audit),
		RemoveService: ucProfessional.NewRemoveService(professionalRepo, serviceRepo, d.Cache, d.Audit),
	}, d.Log)

	clientHandler := handlers.NewClientHandler(handlers.ClientUseCases{
		Create: ucClient.NewCreate(clientRepo, userRepo, uploader, d.Audit),
		Update: ucClient.NewUpdate(clientRepo, uploader, d.Audit),
		Get:    ucClient.NewGet(clientRepo),
		List:   ucClient.NewList(clientRepo),
		Delete: ucClient.NewDelete(clientRepo, uploader, d.Audit),
	}, d.Log)

	serviceHandler := handlers.NewServiceHandler(handlers.ServiceUseCases{
		Create: ucService.NewCreate(serviceRepo, d.Audit),
		Update: ucService.NewUpdate(serviceRepo, d.Cache, d.Audit),
		Get:    ucService.NewGet(serviceRepo),
		List:   ucService.NewList(serviceRepo),
		Delete: ucService.NewDelete(serviceRepo, d.Cache, d.Audit),
	}, d.Log)

	appointmentHandler := handlers.NewAppointmentHandler(handlers.AppointmentUseCases{
		Create: ucAppointment.NewCreate(appointmentRepo, d.Location, d.Audit),
		Update: ucAppointment.NewUpdate(appointmentRepo, d.Location, d.Audit),
		Get:    ucAppointment.NewGet(appointmentRepo),
		List:   ucAppointment.NewList(appointmentRepo, d.Location),
		Delete: ucAppointment.NewDelete(appointmentRepo, d.Audit),
	}, d.Log)

	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.New(appointmentRepo, d.Location),
		d.Log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), d.Location, d.Log)
	healthHandler := handlers.NewHealthHandler(d.DB)

	// ------------------------------
	// 🌐 PÚBLICO
	// ------------------------------
	r.GET("/health", healthHandler.Health)

	r.POST("/auth/register", userHandler.Register)
	r.POST("/auth/login", userHandler.Login)

	// ------------------------------
	// 🔐 API PRIVADA
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Tokens))
	{
		secured.GET("/users", userHandler.List)
		secured.GET("/users/:id", userHandler.Get)
		secured.PATCH("/users/:id", userHandler.Update)
		secured.DELETE("/users/:id", userHandler.Delete)

		// ------------------------------
		// PROFESSIONALS
		// ------------------------------
		secured.POST("/professionals", professionalHandler.Create)
		secured.GET("/professionals", professionalHandler.List)
		secured.GET("/professionals/:id", professionalHandler.Get)
		secured.PATCH("/professionals/:id", professionalHandler.Update)
		secured.DELETE("/professionals/:id", professionalHandler.Delete)
		secured.GET("/professionals/:id/services", professionalHandler.ListServices)
		secured.POST("/professionals/:id/service/:id_service", professionalHandler.AddService)
		secured.DELETE("/professionals/:id/service/:id_service", professionalHandler.RemoveService)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		secured.POST("/clients", clientHandler.Create)
		secured.GET("/clients", clientHandler.List)
		secured.GET("/clients/:id", clientHandler.Get)
		secured.PATCH("/clients/:id", clientHandler.Update)
		secured.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// SERVICES
		// ------------------------------
		secured.POST("/services", serviceHandler.Create)
		secured.GET("/services", serviceHandler.List)
		secured.GET("/services/:id", serviceHandler.Get)
		secured.PATCH("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments", appointmentHandler.List)
		secured.GET("/appointments/:id", appointmentHandler.Get)
		secured.PATCH("/appointments/:id", appointmentHandler.Update)
		secured.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		dashboard := secured.Group("/dashboard")
		dashboard.GET("/total-month", dashboardHandler.TotalMonth)
		dashboard.GET("/appointments-month", dashboardHandler.AppointmentsMonth)
		dashboard.GET("/appointments-day", dashboardHandler.AppointmentsDay)
		dashboard.GET("/appointments-canceled", dashboardHandler.AppointmentsCanceled)
		dashboard.GET("/appointments-interval", dashboardHandler.AppointmentsInterval)
		dashboard.GET("/services-interval", dashboardHandler.ServicesInterval)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
