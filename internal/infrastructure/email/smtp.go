package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"hoteltec/internal/shared/config"
	"hoteltec/internal/shared/logger"
)

// SMTPSender delivers transactional mail. When disabled in configuration it
// logs the message instead of sending, so callers never need to branch.
type SMTPSender struct {
	cfg *config.EmailConfig
	log logger.Interface
}

func NewSMTPSender(cfg *config.EmailConfig, log logger.Interface) *SMTPSender {
	return &SMTPSender{
		cfg: cfg,
		log: log.Named("email"),
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if !s.cfg.Enabled {
		s.log.Infow("email delivery disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	s.log.Infow("email sent", "to", to, "subject", subject)
	return nil
}

// SendOrderReceipt mails the guest a summary of a newly placed order.
func (s *SMTPSender) SendOrderReceipt(to, hotelName, orderNumber string, total float64) error {
	subject := fmt.Sprintf("Your order %s at %s", orderNumber, hotelName)
	body := fmt.Sprintf(`
		<h2>Thanks for your order</h2>
		<p>We received your order <strong>%s</strong> at %s.</p>
		<p>Total: <strong>%.2f</strong></p>
		<p>Your order is being prepared and will be delivered to your room shortly.</p>
	`, orderNumber, hotelName, total)
	return s.Send(to, subject, body)
}

// SendTicketReply notifies a ticket author that support responded.
func (s *SMTPSender) SendTicketReply(to, ticketNumber, ticketTitle string) error {
	subject := fmt.Sprintf("New reply on ticket %s", ticketNumber)
	body := fmt.Sprintf(`
		<h2>Your ticket has a new reply</h2>
		<p>Ticket <strong>%s</strong>: %s</p>
		<p>Sign in to your dashboard to read the response.</p>
	`, ticketNumber, ticketTitle)
	return s.Send(to, subject, body)
}
