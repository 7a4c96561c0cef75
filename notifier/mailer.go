package notifier

import (
	"fmt"
	"strings"

	"asset-app/config"

	"gopkg.in/gomail.v2"
)

// SendPackedReport emails the packed-item report for a job.
func SendPackedReport(toEmails []string, jobName string, lines []string) error {
	if config.SMTPHost == "" || config.SMTPSender == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	subject := "📦 Packliste " + jobName

	var items strings.Builder
	for _, line := range lines {
		items.WriteString("<li>" + line + "</li>")
	}

	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Packliste für Auftrag %s</h3>
				<ul>%s</ul>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, jobName, items.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}

	return nil
}
