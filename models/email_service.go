package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmation(order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmed - Dik Dik Kids Furniture (DD-%s)", shortOrderNumber(order.ID)))

	var itemRows strings.Builder
	for _, item := range order.Items {
		itemRows.WriteString(fmt.Sprintf(`
        <tr>
            <td style="padding: 10px; border-bottom: 1px solid #eee;">%s</td>
            <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: center;">%d</td>
            <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">$%.2f</td>
        </tr>`, item.ProductName, item.Quantity, item.TotalPrice))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #f97316; }
        .order-box { background-color: #fff7ed; border: 2px dashed #f97316; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px; }
        .order-number { font-size: 28px; font-weight: bold; color: #f97316; letter-spacing: 2px; }
        .total { font-size: 18px; font-weight: bold; text-align: right; padding: 15px 10px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Dik Dik Kids Furniture</div>
        </div>
        <p>Hi %s,</p>
        <p>Thank you for your purchase! Your order has been successfully placed.</p>
        <div class="order-box">
            <div>Order Number</div>
            <div class="order-number">DD-%s</div>
        </div>
        <table style="width: 100%%; border-collapse: collapse;">
            <tr>
                <th style="padding: 10px; text-align: left; border-bottom: 2px solid #f97316;">Item</th>
                <th style="padding: 10px; text-align: center; border-bottom: 2px solid #f97316;">Qty</th>
                <th style="padding: 10px; text-align: right; border-bottom: 2px solid #f97316;">Total</th>
            </tr>%s
        </table>
        <div class="total">Total (incl. tax): $%.2f</div>
        <p>We'll send you tracking information once your order ships. Assembly
        instructions will be included with your furniture.</p>
        <div class="footer">
            Need help? Contact us at hello@dikdik.com or call 1-800-DIK-DIKS
        </div>
    </div>
</body>
</html>`, order.CustomerName, shortOrderNumber(order.ID), itemRows.String(), order.TotalAmount)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

// shortOrderNumber mirrors the storefront's friendly order number: the last
// eight characters of the order id, uppercased.
func shortOrderNumber(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}
