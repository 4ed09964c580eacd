package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAssessmentResults(toEmail, firstName, scoreDescription, priorityStep string, percentageScore float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendAssessmentResults(toEmail, firstName, scoreDescription, priorityStep string, percentageScore float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Accountability Assessment Results")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s, your results are in!</h2>
			<p>You scored <strong>%.0f%%</strong> on the accountability assessment.</p>
			<p><strong>%s</strong></p>
			<p>Your biggest opportunity right now:</p>
			<h3 style="color: #007BFF;">%s</h3>
			<p>Focus on this step first. Small, consistent improvements here will lift every other part of your leadership.</p>
			<p>- April</p>
		</div>
	`, firstName, percentageScore, scoreDescription, priorityStep)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send assessment results to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Assessment results sent to %s\n", toEmail)
	return nil
}
