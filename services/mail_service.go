package services

import (
	"fmt"
	"net/smtp"
	"os"
)

// sendMail gửi một email HTML qua SMTP, cấu hình lấy từ env
func sendMail(to string, subject string, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

func SendWelcomeEmail(email string, username string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Tạo tài khoản thành công</title>
	</head>
	<body>
		<p>Xin chào %s,</p>
		<p>Chúc mừng! Bạn đã tạo tài khoản thành công.</p>
		<p>Nếu không yêu cầu tạo tài khoản này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
		<p>Xin cảm ơn,<br>Nhóm tài khoản</p>
	</body>
	</html>`, username)

	return sendMail(email, "Bạn đã tạo tài khoản mới", body)
}

func SendResetPasswordEmail(email string, token string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt lại mật khẩu</title>
	</head>
	<body>
		<p>Xin chào %s,</p>
		<p>Chúng tôi đã nhận yêu cầu đặt lại mật khẩu cho tài khoản của bạn.</p>
		<p>Mã đặt lại mật khẩu của bạn là: <strong>%s</strong></p>
		<p>Mã có hiệu lực trong 1 giờ. Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn.</p>
		<p>Xin cám ơn,<br>Nhóm tài khoản</p>
	</body>
	</html>`, email, token)

	return sendMail(email, "Mã đặt lại mật khẩu của bạn", body)
}

func SendBookingEmail(email string, bookingId uint, totalAmount float64, checkInDate string, checkOutDate string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<p>Xin chào,</p>
		<p>Chúc mừng! Bạn đã đặt phòng thành công.</p>
		<p>Thông tin đặt phòng của bạn như sau:</p>
		<ul>
			<li>Mã đặt phòng: <strong>%d</strong></li>
			<li>Ngày nhận phòng: <strong>%s</strong></li>
			<li>Ngày trả phòng: <strong>%s</strong></li>
			<li>Tổng giá trị: <strong>%.2f</strong></li>
		</ul>
		<p>Chúng tôi sẽ gửi cho bạn thông tin chi tiết khi có sự thay đổi.</p>
		<p>Cảm ơn bạn đã sử dụng dịch vụ của chúng tôi!</p>
	</body>
	</html>`, bookingId, checkInDate, checkOutDate, totalAmount)

	return sendMail(email, "Đặt phòng thành công", body)
}
