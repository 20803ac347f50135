package routes

import (
	_ "iblind_pos/docs" // This will be auto-generated
	"iblind_pos/internal/adapter/http/handlers"
	"iblind_pos/internal/adapter/http/middleware"
	"iblind_pos/internal/adapter/http/session"
	repository2 "iblind_pos/internal/adapter/persistence/repository"
	"iblind_pos/internal/infrastructure/database"
	"iblind_pos/internal/infrastructure/payments"
	"iblind_pos/internal/infrastructure/tenant"
	"iblind_pos/internal/usecase"
	"iblind_pos/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	attendanceRepo := repository2.NewAttendanceDynamoRepository(ddb)
	inventoryRepo := repository2.NewInventoryDynamoRepository(ddb)
	movementRepo := repository2.NewStockMovementDynamoRepository(ddb)
	auditRepo := repository2.NewAuditLogDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	warrantySeq := repository2.NewWarrantyCounterDynamoRepository(ddb)

	tenantConfig := tenant.LoadFromEnv()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	attendanceUseCase := usecase.NewAttendanceUseCase(attendanceRepo, inventoryRepo, movementRepo, auditRepo, warrantySeq, paymentGateway, tenantConfig)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, movementRepo)
	specialistUseCase := usecase.NewSpecialistUseCase(userRepo, attendanceRepo)
	statsUseCase := usecase.NewStatsUseCase(attendanceRepo, inventoryRepo)
	auditUseCase := usecase.NewAuditUseCase(auditRepo)

	sessions := session.NewStore()

	intakeHandler := handlers.NewIntakeHandler(sessions, attendanceUseCase)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	specialistHandler := handlers.NewSpecialistHandler(specialistUseCase)
	statsHandler := handlers.NewStatsHandler(statsUseCase)
	auditHandler := handlers.NewAuditHandler(auditUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.Use(middleware.Actor())
	addPingRoutes(v1)
	addPosRoutes(v1, intakeHandler, attendanceHandler, inventoryHandler, specialistHandler, statsHandler, auditHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
