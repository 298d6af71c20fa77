package routes

import (
	"hotelhub/constants"
	"hotelhub/controllers"
	"hotelhub/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	router.Use(middleware.SessionMiddleware())

	v1 := router.Group("/api/v1")

	// Auth
	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.LoginWithGoogle)
	v1.POST("/auth/forgotPassword", controllers.ForgotPassword)
	v1.POST("/auth/resetPassword", controllers.ResetPassword)

	// Hồ sơ và điểm thưởng của user đang đăng nhập
	v1.GET("/profile", middleware.AuthMiddleware(), controllers.GetProfile)
	v1.PUT("/profile", middleware.AuthMiddleware(), controllers.UpdateProfile)
	v1.PUT("/profile/password", middleware.AuthMiddleware(), controllers.ChangePassword)
	v1.GET("/profile/points", middleware.AuthMiddleware(), controllers.GetPointHistory)

	// Quản lý người dùng (admin)
	v1.GET("/users", middleware.AuthMiddleware(constants.RoleAdmin), controllers.GetUsers)
	v1.PUT("/users/:id/status", middleware.AuthMiddleware(constants.RoleAdmin), controllers.UpdateUserStatus)

	// Loại phòng: đọc công khai, ghi chỉ admin
	v1.GET("/roomTypes", controllers.GetRoomTypes)
	v1.GET("/roomTypes/:id", controllers.GetRoomTypeDetail)
	v1.POST("/roomTypes", middleware.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoomType)
	v1.PUT("/roomTypes/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoomType)
	v1.DELETE("/roomTypes/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoomType)

	// Phòng: đọc công khai, ghi chỉ admin
	v1.GET("/rooms", controllers.GetRooms)
	v1.GET("/rooms/search", controllers.SearchRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", middleware.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoom)
	v1.POST("/rooms/:id/media", middleware.AuthMiddleware(constants.RoleAdmin), controllers.UploadRoomMedia)
	v1.DELETE("/rooms/media/:mediaId", middleware.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoomMedia)

	// Booking: customer đặt và hủy, admin check-in / check-out
	v1.POST("/bookings", middleware.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings", middleware.AuthMiddleware(), controllers.GetBookings)
	v1.GET("/bookings/:id", middleware.AuthMiddleware(), controllers.GetBookingDetail)
	v1.PUT("/bookings/:id/cancel", middleware.AuthMiddleware(), controllers.CancelBooking)
	v1.PUT("/bookings/:id/checkin", middleware.AuthMiddleware(constants.RoleAdmin), controllers.CheckInBooking)
	v1.PUT("/bookings/:id/checkout", middleware.AuthMiddleware(constants.RoleAdmin), controllers.CheckOutBooking)
	v1.GET("/bookings/:id/payments", middleware.AuthMiddleware(constants.RoleAdmin), controllers.GetBookingPayments)

	// Sổ thanh toán và doanh thu (admin)
	v1.GET("/payments", middleware.AuthMiddleware(constants.RoleAdmin), controllers.GetPayments)
	v1.POST("/payments/process/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.ProcessPayment)
	v1.POST("/payments/refund/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.RefundBooking)
	v1.POST("/payments/record/:id", middleware.AuthMiddleware(constants.RoleAdmin), controllers.RecordPayment)
	v1.GET("/revenue", middleware.AuthMiddleware(constants.RoleAdmin), controllers.GetRevenueReport)
}
