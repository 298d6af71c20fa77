package constants

// User role
const (
	RoleCustomer = 0
	RoleAdmin    = 1
)

// User status
const (
	UserStatusDeactive = 0
	UserStatusActive   = 1
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusBooked      = 2
	RoomStatusMaintenance = 3
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Payment type
const (
	PaymentTypeCash         = 0
	PaymentTypeBankTransfer = 1
	PaymentTypeMomo         = 2
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusPaid     = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

// Media type
const (
	MediaTypeImage = 0
	MediaTypeVideo = 1
)

// Revenue report type
const (
	ReportTypeDaily   = "Daily"
	ReportTypeWeekly  = "Weekly"
	ReportTypeMonthly = "Monthly"
	ReportTypeYearly  = "Yearly"
)
