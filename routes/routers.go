package routes

import (
	"roadready/constants"
	"roadready/controllers"
	"roadready/jobs"
	middlewares "roadready/middleware"
	"roadready/models"
	"roadready/repositories"
	"roadready/services"
	"roadready/services/logger"
	"roadready/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cloudinary/cloudinary-go/v2"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	userRepo := repositories.NewGormRepository[models.User](db, "username")
	vehicleRepo := repositories.NewGormRepository[models.Vehicle](db, "")
	reservationRepo := repositories.NewGormRepository[models.Reservation](db, "")
	discountRepo := repositories.NewGormRepository[models.Discount](db, "name")
	vehicleDiscountRepo := repositories.NewGormRepository[models.VehicleDiscount](db, "")
	reservationDiscountRepo := repositories.NewGormRepository[models.ReservationDiscount](db, "")
	paymentRepo := repositories.NewGormRepository[models.Payment](db, "")
	reviewRepo := repositories.NewGormRepository[models.Review](db, "")

	policy := services.AvailabilityPolicy{}
	notifier := notification.NewMelodyService(m)

	authService := services.NewAuthService(services.AuthServiceOptions{
		Users:  userRepo,
		Logger: log.WithPrefix("[auth]"),
	})
	discountService := services.NewDiscountService(services.DiscountServiceOptions{
		Discounts:            discountRepo,
		Vehicles:             vehicleRepo,
		Reservations:         reservationRepo,
		VehicleDiscounts:     vehicleDiscountRepo,
		ReservationDiscounts: reservationDiscountRepo,
		Logger:               log.WithPrefix("[discount]"),
	})
	reservationService := services.NewReservationService(services.ReservationServiceOptions{
		Reservations: reservationRepo,
		Vehicles:     vehicleRepo,
		Pricer:       discountService,
		Policy:       policy,
		Notifier:     notifier,
		Logger:       log.WithPrefix("[reservation]"),
	})
	vehicleService := services.NewVehicleService(services.VehicleServiceOptions{
		Vehicles:     vehicleRepo,
		Reservations: reservationRepo,
		Policy:       policy,
		Logger:       log.WithPrefix("[vehicle]"),
	})
	paymentService := services.NewPaymentService(services.PaymentServiceOptions{
		Payments:     paymentRepo,
		Reservations: reservationRepo,
		Logger:       log.WithPrefix("[payment]"),
	})
	reviewService := services.NewReviewService(services.ReviewServiceOptions{
		Reviews:  reviewRepo,
		Vehicles: vehicleRepo,
		Logger:   log.WithPrefix("[review]"),
	})

	jobs.SetPendingReporter(services.NewPendingCountAdapter(reservationService))

	authController := controllers.NewAuthController(authService)
	vehicleController := controllers.NewVehicleController(vehicleService, reviewService, redisCli)
	reservationController := controllers.NewReservationController(reservationService, discountService)
	discountController := controllers.NewDiscountController(discountService)
	paymentController := controllers.NewPaymentController(paymentService)
	reviewController := controllers.NewReviewController(reviewService)

	admin := constants.RoleAdmin
	user := constants.RoleUser

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/google", authController.GoogleLogin)
	v1.GET("/profile", middlewares.AuthMiddleware(), authController.GetProfile)
	v1.GET("/users", middlewares.AuthMiddleware(admin), authController.GetUsers)
	v1.PUT("/users/:id/status", middlewares.AuthMiddleware(admin), authController.ChangeUserStatus)

	v1.GET("/vehicles", vehicleController.GetVehicles)
	v1.GET("/vehicles/search", vehicleController.SearchVehicles)
	v1.GET("/vehicles/available", vehicleController.GetAvailableVehicles)
	v1.GET("/vehicles/discounted", discountController.GetDiscountedVehicles)
	v1.GET("/vehicles/:id", vehicleController.GetVehicleDetail)
	v1.GET("/vehicles/:id/availability", vehicleController.GetVehicleAvailability)
	v1.GET("/vehicles/:id/discounts", discountController.GetVehicleDiscounts)
	v1.GET("/vehicles/:id/reviews", reviewController.GetVehicleReviews)
	v1.POST("/vehicles", middlewares.AuthMiddleware(admin), vehicleController.CreateVehicle)
	v1.PUT("/vehicles/:id", middlewares.AuthMiddleware(admin), vehicleController.UpdateVehicle)
	v1.DELETE("/vehicles/:id", middlewares.AuthMiddleware(admin), vehicleController.DeleteVehicle)
	v1.PUT("/vehicles/:id/availability", middlewares.AuthMiddleware(admin), vehicleController.ChangeVehicleAvailability)
	v1.PUT("/vehicles/:id/dailyRate", middlewares.AuthMiddleware(admin), vehicleController.ChangeDailyRate)
	v1.PUT("/vehicles/:id/specification", middlewares.AuthMiddleware(admin), vehicleController.ChangeSpecification)
	v1.POST("/vehicles/:id/image", middlewares.AuthMiddleware(admin), vehicleController.UploadVehicleImage)

	v1.POST("/reservations", middlewares.AuthMiddleware(user, admin), reservationController.CreateReservation)
	v1.GET("/reservations", middlewares.AuthMiddleware(admin), reservationController.GetReservations)
	v1.GET("/reservations/pending", middlewares.AuthMiddleware(admin), reservationController.GetPendingReservations)
	v1.GET("/reservations/history", middlewares.AuthMiddleware(user, admin), reservationController.GetMyReservations)
	v1.GET("/reservations/:id", middlewares.AuthMiddleware(user, admin), reservationController.GetReservationDetail)
	v1.GET("/reservations/:id/discounts", middlewares.AuthMiddleware(user, admin), discountController.GetReservationDiscounts)
	v1.PUT("/reservations/:id/status", middlewares.AuthMiddleware(admin), reservationController.ChangeReservationStatus)
	v1.PUT("/reservations/:id/price", middlewares.AuthMiddleware(admin), reservationController.UpdateReservationPrice)
	v1.PUT("/reservations/:id/cancel", middlewares.AuthMiddleware(user, admin), reservationController.CancelReservation)
	v1.PUT("/reservations/:id/discount", middlewares.AuthMiddleware(user, admin), reservationController.ApplyDiscount)

	v1.GET("/discounts", discountController.GetDiscounts)
	v1.GET("/discounts/:id", discountController.GetDiscountDetail)
	v1.POST("/discounts", middlewares.AuthMiddleware(admin), discountController.CreateDiscount)
	v1.PUT("/discounts/:id/percentage", middlewares.AuthMiddleware(admin), discountController.UpdateDiscountPercentage)
	v1.PUT("/discounts/:id/endDate", middlewares.AuthMiddleware(admin), discountController.UpdateDiscountEndDate)
	v1.PUT("/discounts/:id/deactivate", middlewares.AuthMiddleware(admin), discountController.DeactivateDiscount)
	v1.POST("/discounts/:id/vehicles", middlewares.AuthMiddleware(admin), discountController.AssignDiscountToVehicle)
	v1.DELETE("/discounts/:id/vehicles", middlewares.AuthMiddleware(admin), discountController.RemoveDiscountFromVehicle)

	v1.POST("/payments", middlewares.AuthMiddleware(user, admin), paymentController.CreatePayment)
	v1.GET("/payments/history", middlewares.AuthMiddleware(user, admin), paymentController.GetMyPayments)
	v1.GET("/payments/:id", middlewares.AuthMiddleware(user, admin), paymentController.GetPaymentDetail)
	v1.PUT("/payments/:id/status", middlewares.AuthMiddleware(admin), paymentController.UpdatePaymentStatus)

	v1.POST("/reviews", middlewares.AuthMiddleware(user, admin), reviewController.CreateReview)
	v1.DELETE("/reviews/:id", middlewares.AuthMiddleware(admin), reviewController.DeleteReview)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		m.Broadcast([]byte("Thông báo từ backend: Tin nhắn mới!"))
		c.String(200, "Broadcast message sent!")
	})
}
