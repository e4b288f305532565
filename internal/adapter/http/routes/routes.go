package routes

import (
	"log"

	_ "big_studio/docs" // swagger docs registration
	"big_studio/internal/adapter/http/handlers"
	"big_studio/internal/adapter/http/middleware"
	"big_studio/internal/adapter/persistence/repository"
	"big_studio/internal/config"
	"big_studio/internal/infrastructure/database"
	"big_studio/internal/infrastructure/payments"
	"big_studio/internal/infrastructure/token"
	"big_studio/internal/usecase"
	"big_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()
	store := repository.NewBlobStoreDynamoRepository(ddb)
	tokens := token.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(store)
	chargeUseCase := usecase.NewChargeUseCase(jobUseCase, paymentGateway)

	authHandler := handlers.NewAuthHandler(usecase.NewAuthUseCase(store, tokens))
	jobHandler := handlers.NewJobHandler(jobUseCase, chargeUseCase)
	clientHandler := handlers.NewClientHandler(usecase.NewClientUseCase(store))
	draftHandler := handlers.NewDraftHandler(usecase.NewDraftUseCase(store))
	settingsHandler := handlers.NewSettingsHandler(usecase.NewSettingsUseCase(store))
	notificationHandler := handlers.NewNotificationHandler(usecase.NewNotificationUseCase(store))
	calendarHandler := handlers.NewCalendarHandler(usecase.NewCalendarUseCase(store))
	reportHandler := handlers.NewReportHandler(usecase.NewReportUseCase(store))
	backupHandler := handlers.NewBackupHandler(usecase.NewBackupUseCase(store))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	authenticated := v1.Group("", middleware.RequireAuth(tokens))
	addStudioRoutes(authenticated, studioHandlers{
		jobs:          jobHandler,
		clients:       clientHandler,
		drafts:        draftHandler,
		settings:      settingsHandler,
		notifications: notificationHandler,
		calendar:      calendarHandler,
		reports:       reportHandler,
		backup:        backupHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
