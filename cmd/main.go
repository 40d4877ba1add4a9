package main

import (
	"log"
	"os"
	"time"

	_ "github.com/krishsharma1008/offsite/docs"
	"github.com/krishsharma1008/offsite/internal/capture"
	"github.com/krishsharma1008/offsite/internal/handler"
	"github.com/krishsharma1008/offsite/internal/service"
	"github.com/krishsharma1008/offsite/internal/shared"
	"github.com/krishsharma1008/offsite/internal/storage/postgres"
	"github.com/krishsharma1008/offsite/internal/storage/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Offsite Camera API
// @version 1.0
// @description API одноразовой камеры для события: общая пленка на 10 кадров
// @BasePath /
func main() {

	// Загрузка переменных окружения (local)
	if err := godotenv.Load(".env.local"); err != nil {
		log.Println("Error loading .env.local file")
	}

	// БД
	db := postgres.InitDB()

	// Объектное хранилище
	objects, err := s3.NewS3Storage(s3.S3Config{
		Region:          os.Getenv("S3_REGION"),
		Bucket:          os.Getenv("S3_BUCKET"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Endpoint:        os.Getenv("S3_ENDPOINT"),
	})
	if err != nil {
		log.Fatalf("failed to init S3 storage: %v", err)
	}

	eventName := os.Getenv("EVENT_NAME")
	if eventName == "" {
		eventName = shared.DefaultEventName
	}

	// Сервисы
	userService := service.NewUserService(db)
	rollService := service.NewRollService(db)
	uploadService := service.NewUploadService(db, objects, rollService, eventName)
	galleryService := service.NewGalleryService(db, objects, rollService)
	reconcileService := service.NewReconcileService(db, objects, rollService)
	capturer := capture.NewCapturer()

	// Обработчик
	h := handler.NewHandler(userService, uploadService, galleryService, reconcileService, rollService, capturer)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// Логируем в консоль
		if err, ok := recovered.(string); ok {
			log.Printf("panic recovered: %s\n", err)
		} else if err, ok := recovered.(error); ok {
			log.Printf("panic recovered: %v\n", err)
		} else {
			log.Printf("panic recovered: unknown error: %v\n", recovered)
		}
		// Отправляем 500 клиенту
		c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
	}))

	// Настройка CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("FRONTEND_URL"), "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Авторизация
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	// Профиль
	profile := r.Group("/profile")
	{
		profile.Use(h.AuthMiddleware())
		profile.GET("/", h.GetProfile)
	}

	// Камера
	camera := r.Group("/camera")
	{
		camera.GET("/filters", h.GetFilters)
		camera.Use(h.AuthMiddleware())
		camera.POST("/shot", h.Shot)
		camera.GET("/roll", h.GetRoll)
	}

	// Фотокнига
	photobook := r.Group("/photobook")
	{
		photobook.Use(h.AuthMiddleware())
		photobook.GET("", h.GetPhotoBook)
		photobook.GET("/my", h.GetMyPhotos)
		photobook.DELETE("/photo/:id", h.DeletePhoto)
		photobook.POST("/reconcile", h.Reconcile)
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Fatal(r.Run(":8080"))
}
