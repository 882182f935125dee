package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendInterviewResult(toEmail, fullName string, score *int, evaluation string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendInterviewResult(toEmail, fullName string, score *int, evaluation string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Mock Interview Results")

	scoreLine := "Your overall score could not be determined."
	if score != nil {
		scoreLine = fmt.Sprintf("Your overall score: <strong>%d/10</strong>", *score)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Interview Complete, %s!</h2>
			<p>%s</p>
			<h3>Full Evaluation</h3>
			<pre style="white-space: pre-wrap; background: #f5f5f5; padding: 15px; border-radius: 5px;">%s</pre>
			<p>Upload a fresh resume or job description any time to practice again.</p>
		</div>
	`, fullName, scoreLine, evaluation)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send interview result to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Interview result sent to %s\n", toEmail)
	return nil
}
