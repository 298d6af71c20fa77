package controllers

import (
	"time"

	"hotelhub/config"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/services"
	"hotelhub/services/notification"

	"github.com/olahol/melody"
)

var (
	authService     *services.AuthService
	userService     *services.UserService
	bookingService  *services.BookingService
	roomService     *services.RoomService
	roomTypeService *services.RoomTypeService
	paymentService  *services.PaymentService
	revenueService  *services.RevenueService
	searchService   *services.SearchService
)

// Init nối các service với DB, Redis và WebSocket. Gọi một lần sau
// config.InitApp trước khi đăng ký route.
func Init(m *melody.Melody) {
	notifier := notification.NewMelodyService(m)

	authService = services.NewAuthService(config.DB)
	userService = services.NewUserService(services.UserServiceOptions{DB: config.DB})
	bookingService = services.NewBookingService(services.BookingServiceOptions{
		DB:       config.DB,
		Redis:    config.RedisClient,
		Notifier: notifier,
	})
	roomService = services.NewRoomService(services.RoomServiceOptions{
		DB:    config.DB,
		Redis: config.RedisClient,
	})
	roomTypeService = services.NewRoomTypeService(services.RoomTypeServiceOptions{
		DB:    config.DB,
		Redis: config.RedisClient,
	})
	paymentService = services.NewPaymentService(services.PaymentServiceOptions{DB: config.DB})
	revenueService = services.NewRevenueService(services.RevenueServiceOptions{
		DB:    config.DB,
		Redis: config.RedisClient,
	})
	searchService = services.NewSearchService(services.SearchServiceOptions{DB: config.DB})
}

// parseDate đọc ngày dạng dd/mm/yyyy từ request
func parseDate(dateStr string) (time.Time, error) {
	return time.Parse("02/01/2006", dateStr)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
		Points:      user.Points,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           booking.ID,
		Status:       booking.Status,
		CheckInDate:  formatDate(booking.CheckInDate),
		CheckOutDate: formatDate(booking.CheckOutDate),
		TotalAmount:  booking.TotalAmount,
		StaffID:      booking.StaffID,
		User: dto.BookingUserResponse{
			ID:          booking.User.ID,
			Username:    booking.User.Username,
			FullName:    booking.User.FullName,
			Email:       booking.User.Email,
			PhoneNumber: booking.User.PhoneNumber,
		},
		Room: dto.BookingRoomResponse{
			ID:           booking.Room.ID,
			RoomNumber:   booking.Room.RoomNumber,
			RoomTypeName: booking.Room.RoomType.Name,
			NightlyPrice: booking.Room.RoomType.NightlyPrice,
		},
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt: booking.UpdatedAt.Format(time.RFC3339),
	}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	media := make([]dto.RoomMediaResponse, 0, len(room.Media))
	for _, m := range room.Media {
		media = append(media, dto.RoomMediaResponse{
			ID:        m.ID,
			URL:       m.URL,
			MediaType: m.MediaType,
		})
	}
	return dto.RoomResponse{
		ID:          room.ID,
		RoomNumber:  room.RoomNumber,
		Status:      room.Status,
		Description: room.Description,
		StartDate:   formatDate(room.StartDate),
		EndDate:     formatDate(room.EndDate),
		RoomType:    convertToRoomTypeResponse(room.RoomType),
		Media:       media,
	}
}

func convertToRoomTypeResponse(roomType models.RoomType) dto.RoomTypeResponse {
	return dto.RoomTypeResponse{
		ID:           roomType.ID,
		Name:         roomType.Name,
		Description:  roomType.Description,
		NightlyPrice: roomType.NightlyPrice,
	}
}

func convertToPaymentResponse(payment models.Payment) dto.PaymentResponse {
	paymentDate := ""
	if payment.PaymentDate != nil {
		paymentDate = payment.PaymentDate.Format(time.RFC3339)
	}
	return dto.PaymentResponse{
		ID:          payment.ID,
		PaymentCode: payment.PaymentCode,
		BookingID:   payment.BookingID,
		Amount:      payment.Amount,
		PaymentType: payment.PaymentType,
		Status:      payment.Status,
		PaymentDate: paymentDate,
		CreatedAt:   payment.CreatedAt.Format(time.RFC3339),
	}
}
