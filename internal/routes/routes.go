package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/booking-scheduler/internal/audit"
	"github.com/BruksfildServices01/booking-scheduler/internal/config"
	"github.com/BruksfildServices01/booking-scheduler/internal/handlers"
	"github.com/BruksfildServices01/booking-scheduler/internal/middleware"
	"github.com/BruksfildServices01/booking-scheduler/internal/usecase"
	ucAppointment "github.com/BruksfildServices01/booking-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/booking-scheduler/internal/usecase/availability"
	ucCatalog "github.com/BruksfildServices01/booking-scheduler/internal/usecase/catalog"
	"github.com/BruksfildServices01/booking-scheduler/internal/validators"
)

func RegisterRoutes(
	r *gin.Engine,
	deps usecase.Deps,
	auditLog *audit.Logger,
	gatherer prometheus.Gatherer,
	cfg *config.Config,
) error {

	if err := validators.Register(); err != nil {
		return err
	}

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return err
	}

	deps = deps.WithDefaults()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.Recovery(deps.Log),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Log),
		middleware.CORSMiddleware(),
		middleware.RateLimitMiddleware(cfg.RateLimitPerMin),
	)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(deps)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(deps)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(deps)
	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(deps)
	getAppointmentUC := ucAppointment.NewGetAppointment(deps)
	listClientUC := ucAppointment.NewListClientAppointments(deps)
	listProfessionalUC := ucAppointment.NewListProfessionalAppointments(deps)

	getWeeklyUC := ucAvailability.NewGetWeeklySchedule(deps)
	replaceWeeklyUC := ucAvailability.NewReplaceWeeklySchedule(deps)
	exceptionsUC := ucAvailability.NewExceptions(deps)
	resolveTimesUC := ucAvailability.NewResolveTimes(deps)

	professionalsUC := ucCatalog.NewProfessionals(deps)
	servicesUC := ucCatalog.NewServices(deps)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		rescheduleAppointmentUC,
		getAppointmentUC,
		listClientUC,
		listProfessionalUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		getWeeklyUC,
		replaceWeeklyUC,
		exceptionsUC,
		resolveTimesUC,
	)

	professionalHandler := handlers.NewProfessionalHandler(professionalsUC)
	serviceHandler := handlers.NewServiceHandler(servicesUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLog, deps.Catalog)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")

	// ------------------------------
	// 🔐 TODAS AS ROTAS EXIGEM TOKEN
	// ------------------------------
	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// ------------------------------
		// CATÁLOGO
		// ------------------------------
		secured.GET("/professionals", professionalHandler.List)
		secured.GET("/professionals/:id", professionalHandler.Get)
		secured.GET("/professionals/me", professionalHandler.GetMe)
		secured.PUT("/professionals/me", professionalHandler.UpdateMe)

		secured.GET("/services", serviceHandler.List)
		secured.GET("/services/:id", serviceHandler.Get)
		secured.GET("/services/from/:professionalId", serviceHandler.ListFrom)
		secured.POST("/services/create-service", serviceHandler.Create)
		secured.PUT("/services/update-service/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Deactivate)

		// ------------------------------
		// AVAILABILITY
		// ------------------------------
		secured.GET("/availability/professional/:id/times", availabilityHandler.Times)
		secured.GET("/availability/professional/:id/weekly", availabilityHandler.WeeklyOf)
		secured.GET("/availability/professional/:id/exceptions", availabilityHandler.ExceptionsOf)
		secured.GET("/availability/weekly", availabilityHandler.GetWeekly)
		secured.POST("/availability/weekly", availabilityHandler.ReplaceWeekly)
		secured.GET("/availability/exceptions", availabilityHandler.ListExceptions)
		secured.POST("/availability/exceptions", availabilityHandler.AddException)
		secured.DELETE("/availability/exceptions/:id", availabilityHandler.DeleteException)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/appointments/create-appointment/:serviceId", appointmentHandler.Create)
		secured.GET("/appointments/client", appointmentHandler.ListClient)
		secured.GET("/appointments/professional/:id", appointmentHandler.ListProfessional)
		secured.GET("/appointments/:id", appointmentHandler.Get)

		// aceitos como PATCH (API) ou POST (form action)
		for _, method := range []string{http.MethodPatch, http.MethodPost} {
			secured.Handle(method, "/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.Handle(method, "/appointments/:id/complete", appointmentHandler.Complete)
			secured.Handle(method, "/appointments/:id/reschedule", appointmentHandler.Reschedule)
		}

		secured.GET("/audit-logs", auditLogsHandler.List)
	}

	return nil
}
