package utils

import (
	"fmt"
	"io"
	"log"
	"strings"

	"cinema_booking/config"

	"gopkg.in/gomail.v2"
)

// TicketEmailData dữ liệu cho email xác nhận vé
type TicketEmailData struct {
	OrderCode   string
	MovieName   string
	Showtime    string
	Seats       []string
	TotalAmount float64
}

// SendTicketEmail gửi email xác nhận thanh toán kèm QR check-in nhúng inline.
// Gọi async từ handler để không delay response.
func SendTicketEmail(cfg *config.Config, to string, data TicketEmailData) {
	if cfg.SMTPHost == "" || to == "" {
		return
	}

	body := fmt.Sprintf(
		"<h2>Đặt vé thành công!</h2>"+
			"<p>Mã đơn: <b>%s</b></p>"+
			"<p>Phim: %s</p>"+
			"<p>Suất chiếu: %s</p>"+
			"<p>Ghế: %s</p>"+
			"<p>Tổng tiền: %.0f</p>"+
			`<p>Đưa mã QR dưới đây cho nhân viên khi vào rạp:</p><img src="cid:qr_checkin_code"/>`,
		data.OrderCode, data.MovieName, data.Showtime,
		strings.Join(data.Seats, ", "), data.TotalAmount)

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Vé xem phim - Mã đơn: "+data.OrderCode)
	m.SetBody("text/html", body)

	qrBytes, err := GenerateQRCode(data.OrderCode, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR: %v", err)
	} else {
		m.Embed("qr_checkin.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_checkin_code>"},
				"Content-Disposition": {"inline"},
			}),
		)
	}

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi email: %v", err)
	} else {
		log.Printf("Email vé + QR đã gửi đến %s", to)
	}
}
