package main

import (
	"context"
	"log"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/delivery/http/middlewares"
	"medintake-service/internal/app/delivery/http/routers"
	"medintake-service/internal/app/drivers/database"
	"medintake-service/internal/app/drivers/logger"
	"medintake-service/internal/app/drivers/storage"
	"medintake-service/internal/app/services/appointments"
	"medintake-service/internal/app/services/patients"
	"medintake-service/internal/app/services/sections"
	sharedredis "medintake-service/internal/app/services/shared/redis"
	sharedstorage "medintake-service/internal/app/services/shared/storage"
	"medintake-service/internal/app/services/socialhistory"
	"medintake-service/internal/app/services/visits"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		zapLogger.Warn("Failed to disconnect mongo client")
	}
	if err := redisClient.Close(); err != nil {
		zapLogger.Warn("Failed to close redis client")
	}

	zapLogger.Info("Server exiting")
}

func bootstrapTheApp(b config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(b.Redis)
	attachmentStorage := sharedstorage.NewMinioStorage(b.Minio, b.DriverConfig.Minio.BucketName)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(b.Logger, b.InternalConfig)

	cacheTTL := time.Second * time.Duration(b.InternalConfig.App.PatientCacheTTLSeconds)

	// Patient aggregate
	patientMongoRepository := patients.NewPatientMongoRepository(b.MongoDB, b.DriverConfig.MongoDB.DbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, attachmentStorage, redisRepository, b.Logger, cacheTTL)
	patientController := patients.NewPatientController(b.Logger, patientUsecase, b.InternalConfig.App.UploadMaxSizeInMB)

	// Sections
	sectionUsecase := sections.NewSectionUsecase(patientMongoRepository, attachmentStorage, redisRepository, b.Logger)
	sectionController := sections.NewSectionController(b.Logger, sectionUsecase, b.InternalConfig.App.UploadMaxSizeInMB)

	// Social history
	socialHistoryUsecase := socialhistory.NewSocialHistoryUsecase(patientMongoRepository, redisRepository, b.Logger)
	socialHistoryController := socialhistory.NewSocialHistoryController(b.Logger, socialHistoryUsecase)

	// Visits
	visitMongoRepository := visits.NewVisitMongoRepository(b.MongoDB, b.DriverConfig.MongoDB.DbName)
	visitUsecase := visits.NewVisitUsecase(visitMongoRepository, b.Logger)
	visitController := visits.NewVisitController(b.Logger, visitUsecase)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(b.MongoDB, b.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, b.Logger)
	appointmentController := appointments.NewAppointmentController(b.Logger, appointmentUsecase)

	routers.SetupRoutes(
		b.Router,
		b.InternalConfig,
		appMiddlewares,
		patientController,
		sectionController,
		socialHistoryController,
		visitController,
		appointmentController,
	)
}
