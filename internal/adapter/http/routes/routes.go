package routes

import (
	"log"

	_ "orderdesk/docs" // This will be auto-generated
	"orderdesk/internal/adapter/http/handlers"
	repository2 "orderdesk/internal/adapter/persistence/repository"
	"orderdesk/internal/config"
	"orderdesk/internal/infrastructure/database"
	"orderdesk/internal/infrastructure/dispatch"
	"orderdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(cfg.RunAddress); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(cfg)

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	realisationRepo := repository2.NewRealisationDynamoRepository(ddb)

	guards := usecase.NewGuards(customerRepo, employeeRepo, orderRepo)
	assigner := usecase.NewRandomAssignment()

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo)
	realisationUseCase := usecase.NewRealisationUseCase(realisationRepo, orderRepo, quotationRepo, guards, logger)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, orderRepo, employeeRepo, guards, realisationUseCase, assigner, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, guards, quotationUseCase, logger)

	dispatcher := dispatch.NewDispatcher(cfg.DispatchQueueSize, cfg.DispatchWorkers, cfg.DispatchMaxRetries, cfg.DispatchRetryDelay, logger)
	registerTasks(dispatcher, orderUseCase, quotationUseCase, realisationUseCase)
	dispatcher.Start()

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, dispatcher)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase, dispatcher)
	realisationHandler := handlers.NewRealisationHandler(realisationUseCase, dispatcher)
	jobHandler := handlers.NewJobHandler(dispatcher)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, customerHandler, employeeHandler, orderHandler, quotationHandler, realisationHandler, jobHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
