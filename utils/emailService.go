package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"talyouth/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
// A missing sender configuration turns this into a logged no-op so local
// setups work without mail credentials.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	if from == "" || password == "" {
		log.Printf("Email sending skipped (no SMTP credentials). Subject: %s To: %v", subject, to)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: TALYOUTH Program <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the program's standard layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #19486A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #19486A; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>TALYOUTH</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">TALYOUTH SDG Leadership Program</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, firstName, role string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to the TALYOUTH SDG Leadership Program! Your %s account is ready.</p>
		<p>Log in to explore the video library and start your journey.</p>`, firstName, role)
	return SendEmail([]string{email}, "Welcome to TALYOUTH", getEmailTemplate("Welcome aboard", body))
}

// SendFeedbackNotification tells a participant their mentor left feedback
func SendFeedbackNotification(email, firstName, mentorName string, week int) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>%s has submitted feedback on your week %d progress.</p>
		<p>Log in to read it on your progress page.</p>`, firstName, mentorName, week)
	return SendEmail([]string{email}, "New mentor feedback", getEmailTemplate("New mentor feedback", body))
}
