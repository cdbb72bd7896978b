package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)
	store := cache.NewStore(logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	universityRepo := repositories.NewUniversityRepository(dbConn, logger)
	buildingRepo := repositories.NewBuildingRepository(dbConn, logger)
	floorRepo := repositories.NewFloorRepository(dbConn, logger)
	facultyRepo := repositories.NewFacultyRepository(dbConn, logger)
	roomRepo := repositories.NewRoomRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	specificationRepo := repositories.NewSpecificationRepository(dbConn, logger)
	repairRepo := repositories.NewRepairRepository(dbConn, logger)
	disposalRepo := repositories.NewDisposalRepository(dbConn, logger)
	contractRepo := repositories.NewContractRepository(dbConn, logger)
	movementRepo := repositories.NewMovementRepository(dbConn, logger)

	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger, &cfg.Auth)
	userService := services.NewUserService(userRepo, store, logger)
	universityService := services.NewUniversityService(universityRepo, store, logger)
	buildingService := services.NewBuildingService(buildingRepo, universityRepo, store, logger)
	floorService := services.NewFloorService(floorRepo, buildingRepo, store, logger)
	facultyService := services.NewFacultyService(facultyRepo, buildingRepo, store, logger)
	roomService := services.NewRoomService(roomRepo, buildingRepo, floorRepo, store, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, roomRepo, movementRepo, txManager, store, logger)
	specificationService := services.NewSpecificationService(specificationRepo, equipmentRepo, txManager, store, validate, logger)
	lifecycleService := services.NewLifecycleService(equipmentRepo, repairRepo, disposalRepo, contractRepo, txManager, store, logger)
	reportService := services.NewReportService(equipmentRepo, facultyRepo, store, logger)

	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	universityController := controllers.NewUniversityController(universityService, logger)
	buildingController := controllers.NewBuildingController(buildingService, logger)
	floorController := controllers.NewFloorController(floorService, logger)
	facultyController := controllers.NewFacultyController(facultyService, logger)
	roomController := controllers.NewRoomController(roomService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	specificationController := controllers.NewSpecificationController(specificationService, logger)
	lifecycleController := controllers.NewLifecycleController(lifecycleService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController, authMW)
	runUserRouter(secureGroup, userController, authMW)
	runUniversityRouter(secureGroup, universityController, authMW)
	runBuildingRouter(secureGroup, buildingController, authMW)
	runFloorRouter(secureGroup, floorController, authMW)
	runFacultyRouter(secureGroup, facultyController, authMW)
	runRoomRouter(secureGroup, roomController, authMW)
	runEquipmentRouter(secureGroup, equipmentController, authMW)
	runSpecificationRouter(secureGroup, specificationController, authMW)
	runLifecycleRouter(secureGroup, lifecycleController, authMW)
	runReportRouter(secureGroup, reportController, authMW)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
