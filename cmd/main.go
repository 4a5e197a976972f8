package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minhct267/Tech-Lab-Management/internal/config"
	mongodb "github.com/minhct267/Tech-Lab-Management/internal/database/mongo"
	redisdb "github.com/minhct267/Tech-Lab-Management/internal/database/redis"
	"github.com/minhct267/Tech-Lab-Management/internal/events"
	"github.com/minhct267/Tech-Lab-Management/internal/handlers"
	"github.com/minhct267/Tech-Lab-Management/internal/identity"
	"github.com/minhct267/Tech-Lab-Management/internal/middleware"
	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
	"github.com/minhct267/Tech-Lab-Management/internal/service"
	"github.com/minhct267/Tech-Lab-Management/pkg/discovery"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	mongoClient, database, err := mongodb.Connect(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Fatal error connecting to MongoDB: %s", err)
	}
	defer mongodb.Disconnect(mongoClient)

	redisClient, err := redisdb.NewClient(cfg.RedisURI)
	if err != nil {
		log.Fatalf("Fatal error connecting to Redis: %s", err)
	}
	defer redisClient.Close()

	publisher, err := events.NewEventPublisher(cfg.RabbitURI)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Repositories
	userRepo := repository.NewMongoRepository[models.User, *models.User](database, "users")
	labRepo := repository.NewMongoRepository[models.Lab, *models.Lab](database, "labs")
	equipmentRepo := repository.NewMongoRepository[models.Equipment, *models.Equipment](database, "equipment")
	testRepo := repository.NewMongoRepository[models.InductionTest, *models.InductionTest](database, "induction_tests")
	requestRepo := repository.NewMongoRepository[models.AccessRequest, *models.AccessRequest](database, "access_requests")
	grantRepo := repository.NewMongoRepository[models.AccessGrant, *models.AccessGrant](database, "access_grants")
	bookingRepo := repository.NewMongoRepository[models.Booking, *models.Booking](database, "bookings")
	teamRepo := repository.NewMongoRepository[models.Team, *models.Team](database, "teams")
	maintenanceRepo := repository.NewMongoRepository[models.MaintenanceTask, *models.MaintenanceTask](database, "maintenance_tasks")
	sessionRepo := repository.NewSessionRepository(redisClient)

	// Services
	inductionService := service.NewInductionService()
	accessService := service.NewAccessService(requestRepo, grantRepo, testRepo, inductionService, publisher)
	schedulingService := service.NewSchedulingService(bookingRepo, publisher)
	authorizationService := service.NewAuthorizationService(identity.ContextProvider{}, grantRepo, labRepo, equipmentRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, cfg)
	labService := service.NewLabService(labRepo, testRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo, labRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, equipmentRepo)
	teamService := service.NewTeamService(teamRepo, userRepo)
	analyticsService := service.NewAnalyticsService(userRepo, labRepo, equipmentRepo, bookingRepo, requestRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	accessHandler := handlers.NewAccessHandler(accessService, authorizationService)
	bookingHandler := handlers.NewBookingHandler(schedulingService, authorizationService)
	labHandler := handlers.NewLabHandler(labService, authorizationService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService, maintenanceService, authorizationService)
	userHandler := handlers.NewUserHandler(authService, authorizationService)
	teamHandler := handlers.NewTeamHandler(teamService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, authorizationService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.FEAddress},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/auth/login", authHandler.Login)

	protected := r.Group("/", middleware.RequireAuth(cfg, sessionRepo, userRepo))
	{
		protected.POST("/auth/logout", authHandler.Logout)

		protected.POST("/access/requests", accessHandler.SubmitRequest)
		protected.GET("/access/requests", accessHandler.ListRequests)
		protected.POST("/access/requests/:id/approve", accessHandler.Approve)
		protected.POST("/access/requests/:id/reject", accessHandler.Reject)
		protected.GET("/access/check", accessHandler.CheckAccess)

		protected.POST("/bookings", bookingHandler.Create)
		protected.GET("/bookings", bookingHandler.List)
		protected.GET("/bookings/conflicts", bookingHandler.Conflicts)
		protected.POST("/bookings/:id/reject", bookingHandler.Reject)

		protected.GET("/labs", labHandler.List)
		protected.POST("/labs", labHandler.Create)
		protected.GET("/labs/:id", labHandler.Get)
		protected.GET("/labs/:id/can-enter", labHandler.CanEnter)
		protected.GET("/labs/:id/induction", labHandler.GetInduction)
		protected.PUT("/labs/:id/induction", labHandler.UpsertInduction)

		protected.GET("/equipment", equipmentHandler.List)
		protected.POST("/equipment", equipmentHandler.Create)
		protected.GET("/equipment/:id/can-use", equipmentHandler.CanUse)
		protected.POST("/equipment/:id/maintenance", equipmentHandler.CreateMaintenanceTask)
		protected.GET("/maintenance", equipmentHandler.ListMaintenanceTasks)
		protected.PUT("/maintenance/:id/complete", equipmentHandler.CompleteMaintenanceTask)

		protected.GET("/users", userHandler.List)
		protected.POST("/users", userHandler.Create)

		protected.GET("/teams", teamHandler.List)
		protected.POST("/teams", teamHandler.Create)

		protected.GET("/analytics/bookings-by-role-hour", analyticsHandler.BookingVolume)
		protected.GET("/analytics/approval-rate", analyticsHandler.ApprovalRate)
		protected.GET("/analytics/induction-scores", analyticsHandler.InductionScores)
		protected.GET("/analytics/equipment-hours", analyticsHandler.EquipmentHours)
	}

	registry, err := discovery.NewServiceRegistry(cfg)
	if err != nil {
		log.Printf("Service discovery unavailable: %v", err)
	} else if err := registry.Register(); err != nil {
		log.Printf("Failed to register with Consul: %v", err)
	} else {
		defer func() {
			if err := registry.Deregister(); err != nil {
				log.Printf("Failed to deregister from Consul: %v", err)
			}
		}()
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
