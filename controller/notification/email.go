package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"carehaven/model"
	"carehaven/services"
)

func renderDigestEmail(digest services.Digest) string {
	var b strings.Builder
	b.WriteString(`<table width="680px" cellpadding="8" cellspacing="0" border="0" style="font-family:Arial,sans-serif">`)
	b.WriteString(`<tr><td align="center" bgcolor="#eeeeee"><h1>Compliance Reminders</h1></td></tr>`)

	b.WriteString(`<tr><td><h2>Due in 5 days</h2>`)
	writeDigestSection(&b, digest.Upcoming)
	b.WriteString(`</td></tr>`)

	b.WriteString(`<tr><td><h2>Due in 6-15 days</h2>`)
	writeDigestSection(&b, digest.Future)
	b.WriteString(`</td></tr>`)

	b.WriteString(`</table>`)
	return b.String()
}

func writeDigestSection(b *strings.Builder, reminders []services.DigestReminder) {
	if len(reminders) == 0 {
		b.WriteString(`<p>No reminders in this window.</p>`)
		return
	}

	b.WriteString(`<table width="100%" cellpadding="4" cellspacing="0" border="1" style="border-collapse:collapse">`)
	b.WriteString(`<tr bgcolor="#eeeeee"><th>Type</th><th>Name</th><th>Facility</th><th>Document</th><th>Due Date</th></tr>`)
	for _, r := range reminders {
		fmt.Fprintf(b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
			r.Type, r.Name, r.FacilityName, r.DocumentType, r.DueDate)
	}
	b.WriteString(`</table>`)
}

func sendEmail(config *model.EmailConfig, to, subject, body string) error {
	addr := config.Host + ":" + config.Port
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	from := config.Username
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := "From: " + from + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n" +
		mime + "\n" +
		body

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("SMTP send error: %w", err)
	}
	return nil
}
