package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"kantinku/internal/analytics"
	"kantinku/internal/caching"
	"kantinku/internal/handlers"
	"kantinku/internal/jobs/background"
	"kantinku/internal/middleware"
	"kantinku/internal/repositories"
	"kantinku/internal/services"
)

const version = "1.0.0"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "kantinku-dev-secret"
		log.Printf("WARNING: JWT_SECRET not set, using development secret")
	}
	tokenTTL := 24 * time.Hour
	if ttlStr := os.Getenv("TOKEN_TTL_HOURS"); ttlStr != "" {
		if hours, err := strconv.Atoi(ttlStr); err == nil && hours > 0 {
			tokenTTL = time.Duration(hours) * time.Hour
		}
	}

	// Redis configuration
	redisAddr := envOr("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := envOr("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey := envOr("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey := envOr("MINIO_SECRET_KEY", "minioadmin")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	minioSvc, err := services.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	for _, bucket := range []string{services.BucketMenuPhotos, services.BucketUserPhotos, services.BucketReceipts} {
		if err := minioSvc.EnsureBucketExists(context.Background(), bucket); err != nil {
			log.Printf("WARNING: could not ensure bucket %s: %v", bucket, err)
		}
	}

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	studentRepo := repositories.NewStudentRepo(pool)
	vendorRepo := repositories.NewVendorRepo(pool)
	menuRepo := repositories.NewMenuRepo(pool)
	discountRepo := repositories.NewDiscountRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)

	// Cache
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Services
	authSvc := services.NewAuthService(userRepo, studentRepo, vendorRepo, jwtSecret, tokenTTL)
	studentSvc := services.NewStudentService(studentRepo, minioSvc)
	vendorSvc := services.NewVendorService(vendorRepo)
	pricingSvc := services.NewPricingService(menuRepo, discountRepo)
	menuSvc := services.NewMenuService(menuRepo, pricingSvc, cacheSvc, minioSvc)
	discountSvc := services.NewDiscountService(discountRepo, menuRepo)
	orderSvc := services.NewOrderService(orderRepo, menuRepo, pricingSvc, vendorRepo, studentRepo, cacheSvc)
	receiptSvc := services.NewReceiptService(minioSvc)
	analyticsSvc := analytics.NewService(orderRepo, cacheSvc)

	// Background jobs
	scheduler, err := background.NewJobScheduler(analyticsSvc, cacheSvc, vendorRepo)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	studentHandlers := handlers.NewStudentHandlers(studentSvc)
	vendorHandlers := handlers.NewVendorHandlers(vendorSvc)
	menuHandlers := handlers.NewMenuHandlers(menuSvc, vendorSvc)
	discountHandlers := handlers.NewDiscountHandlers(discountSvc, vendorSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc, studentSvc, vendorSvc, analyticsSvc)
	receiptHandlers := handlers.NewReceiptHandlers(orderSvc, receiptSvc, studentSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Public routes
	e.GET("/health", healthHandlers.Health)
	e.POST("/auth/register/student", authHandlers.RegisterStudent)
	e.POST("/auth/register/vendor", authHandlers.RegisterVendor)
	e.POST("/auth/login", authHandlers.Login)
	e.GET("/vendors", vendorHandlers.ListVendors)
	e.GET("/menus", menuHandlers.BrowseMenus)
	e.GET("/menus/:id", menuHandlers.GetMenu)
	e.GET("/menus/:id/discounts", discountHandlers.ListMenuDiscounts)

	// Student routes
	student := e.Group("", middleware.JWT(authSvc), middleware.RequireStudent())
	student.GET("/profile", studentHandlers.GetProfile)
	student.PUT("/profile", studentHandlers.UpdateProfile)
	student.POST("/profile/photo", studentHandlers.UploadProfilePhoto)
	student.POST("/orders", orderHandlers.PlaceOrder)
	student.GET("/orders", orderHandlers.ListStudentOrders)
	student.GET("/orders/history/:month", orderHandlers.StudentMonthlyHistory)
	student.GET("/orders/:id", orderHandlers.GetStudentOrder)
	student.GET("/orders/:id/receipt", receiptHandlers.GetReceipt)
	student.GET("/orders/:id/receipt/html", receiptHandlers.GetReceiptHTML)
	student.GET("/orders/:id/receipt/pdf", receiptHandlers.GetReceiptPDF)

	// Vendor routes
	vendor := e.Group("/vendor", middleware.JWT(authSvc), middleware.RequireVendor())
	vendor.GET("/profile", vendorHandlers.GetProfile)
	vendor.PUT("/profile", vendorHandlers.UpdateProfile)
	vendor.GET("/menus", menuHandlers.ListVendorMenus)
	vendor.POST("/menus", menuHandlers.CreateMenu)
	vendor.PUT("/menus/:id", menuHandlers.UpdateMenu)
	vendor.DELETE("/menus/:id", menuHandlers.DeleteMenu)
	vendor.POST("/menus/:id/photo", menuHandlers.UploadMenuPhoto)
	vendor.GET("/discounts", discountHandlers.ListDiscounts)
	vendor.POST("/discounts", discountHandlers.CreateDiscount)
	vendor.GET("/discounts/:id", discountHandlers.GetDiscount)
	vendor.PUT("/discounts/:id", discountHandlers.UpdateDiscount)
	vendor.DELETE("/discounts/:id", discountHandlers.DeleteDiscount)
	vendor.POST("/discounts/:id/menus/:menuID", discountHandlers.LinkMenu)
	vendor.DELETE("/discounts/:id/menus/:menuID", discountHandlers.UnlinkMenu)
	vendor.GET("/orders", orderHandlers.ListVendorOrders)
	vendor.GET("/orders/history/:month", orderHandlers.VendorMonthlyHistory)
	vendor.GET("/orders/:id", orderHandlers.GetVendorOrder)
	vendor.PATCH("/orders/:id/status", orderHandlers.UpdateOrderStatus)
	vendor.GET("/reports/:month", orderHandlers.VendorMonthlyReport)
	vendor.GET("/students", studentHandlers.ListStudents)
	vendor.PUT("/students/:id", studentHandlers.UpdateStudent)
	vendor.DELETE("/students/:id", studentHandlers.DeleteStudent)

	port := envOr("PORT", "8080")
	log.Printf("kantinku %s listening on :%s", version, port)
	e.Logger.Fatal(e.Start(":" + port))
}
