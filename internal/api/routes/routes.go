package routes

import (
	"ops-portal-backend/internal/api/handlers"
	"ops-portal-backend/internal/api/middleware"
	"ops-portal-backend/internal/auth"
	"ops-portal-backend/internal/config"
	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/repository"
	"ops-portal-backend/internal/scope"
	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)
	contactRepo := repository.NewContactRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)

	// The scope engine reads the hierarchy and policy facts through the
	// directory; every scoped listing and authorization check goes
	// through these two.
	directory := repository.NewOrgDirectory(db)
	resolver := scope.NewResolver(directory)
	checker := scope.NewChecker(directory, cfg.ElevatedDepartments)

	// Initialize services
	userService := service.NewUserService(userRepo, tagRepo, resolver, validator)
	organizationService := service.NewOrganizationService(assignmentRepo, departmentRepo, teamRepo, userRepo, validator)
	announcementService := service.NewAnnouncementService(announcementRepo, validator)
	checkinService := service.NewCheckinService(checkinRepo, userRepo, resolver, checker, validator)
	contactService := service.NewContactService(contactRepo, resolver, validator)
	contractorService := service.NewContractorService(contractorRepo, resolver, validator)
	trainingService := service.NewTrainingService(trainingRepo, userRepo, resolver, validator)
	estimateService := service.NewEstimateService(estimateRepo, resolver, validator)
	directoryService := service.NewDirectorySearchService(cfg)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, userService)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize auth service")
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	authHandler := auth.NewAuthHandler(authService, userService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	checkinHandler := handlers.NewCheckinHandler(checkinService)
	contactHandler := handlers.NewContactHandler(contactService)
	contractorHandler := handlers.NewContractorHandler(contractorService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	estimateHandler := handlers.NewEstimateHandler(estimateService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	api := router.Group("/api")
	authHandler.RegisterRoutes(api, authMiddleware)

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	adminOnly := authMiddleware.RequireRole(models.RoleOwner, models.RoleSuperAdmin)

	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", adminOnly, userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", adminOnly, userHandler.UpdateUser)
			users.DELETE("/:id", adminOnly, userHandler.DeleteUser)
			users.POST("/:id/approve", adminOnly, userHandler.ApproveUser)
			users.GET("/:id/tags", userHandler.GetUserTags)
			users.PUT("/:id/tags", adminOnly, userHandler.ReplaceUserTags)
		}

		// Hierarchy routes
		hierarchy := v1.Group("/hierarchy")
		{
			hierarchy.GET("/assignments", organizationHandler.ListAssignments)
			hierarchy.POST("/assignments", adminOnly, organizationHandler.CreateAssignment)
			hierarchy.DELETE("/assignments", adminOnly, organizationHandler.DeleteAssignment)
			hierarchy.GET("/tree", organizationHandler.GetHierarchyTree)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", organizationHandler.GetDepartments)
			departments.POST("", adminOnly, organizationHandler.CreateDepartment)
			departments.PUT("/:id", adminOnly, organizationHandler.UpdateDepartment)
			departments.DELETE("/:id", adminOnly, organizationHandler.DeleteDepartment)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", organizationHandler.GetTeams)
			teams.POST("", adminOnly, organizationHandler.CreateTeam)
			teams.GET("/:id", organizationHandler.GetTeam)
			teams.DELETE("/:id", adminOnly, organizationHandler.DeleteTeam)
			teams.POST("/:id/members/:userId", adminOnly, organizationHandler.AddTeamMember)
			teams.DELETE("/:id/members/:userId", adminOnly, organizationHandler.RemoveTeamMember)
		}

		// Announcement routes
		announcements := v1.Group("/announcements")
		{
			announcements.GET("", announcementHandler.GetAnnouncements)
			announcements.POST("", announcementHandler.CreateAnnouncement)
			announcements.PUT("/:id", announcementHandler.UpdateAnnouncement)
			announcements.DELETE("/:id", announcementHandler.DeleteAnnouncement)
		}

		// Check-in routes
		checkins := v1.Group("/checkins")
		{
			checkins.GET("", checkinHandler.ListCheckins)
			checkins.POST("", checkinHandler.CreateCheckin)
			checkins.POST("/:id/assign", checkinHandler.AssignCheckin)
			checkins.POST("/:id/complete", checkinHandler.CompleteCheckin)
			checkins.POST("/access/:userId", adminOnly, checkinHandler.GrantSubmissionAccess)
			checkins.DELETE("/access/:userId", adminOnly, checkinHandler.RevokeSubmissionAccess)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		// Contractor routes
		contractors := v1.Group("/contractors")
		{
			contractors.GET("", contractorHandler.ListContractors)
			contractors.POST("", contractorHandler.CreateContractor)
			contractors.PUT("/:id", contractorHandler.UpdateContractor)
			contractors.DELETE("/:id", contractorHandler.DeleteContractor)
		}

		// Training routes
		trainings := v1.Group("/trainings")
		{
			trainings.GET("", trainingHandler.GetTrainings)
			trainings.POST("", trainingHandler.CreateTraining)
			trainings.DELETE("/:id", trainingHandler.DeleteTraining)
			trainings.GET("/assignments", trainingHandler.ListAssignments)
			trainings.POST("/assignments", trainingHandler.AssignTraining)
			trainings.PATCH("/assignments/:id", trainingHandler.UpdateAssignmentStatus)
		}

		// Estimate routes
		estimates := v1.Group("/estimates")
		{
			estimates.GET("", estimateHandler.ListEstimates)
			estimates.POST("", estimateHandler.CreateEstimate)
			estimates.GET("/:id", estimateHandler.GetEstimate)
			estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
			estimates.GET("/:id/compare/:otherId", estimateHandler.CompareEstimates)
		}

		// Corporate directory routes
		directory := v1.Group("/directory")
		{
			directory.GET("/search", directoryHandler.Search)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})

	return router
}
