package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"
)

var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

// StripHTML derives a plain-text alternative from an HTML body.
func StripHTML(html string) string {
	return strings.TrimSpace(htmlTagRE.ReplaceAllString(html, ""))
}

var replyTmpl = template.Must(template.New("reply").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;max-width:600px;margin:0 auto;padding:20px">
  <p>Dear <strong>{{.Name}}</strong>,</p>
  <p>Thank you for reaching out. We have reviewed your message.</p>
  <div style="background:#f8f9fa;padding:20px;border-left:4px solid #007bff">
    <h3>Our response:</h3>
    <p>{{.Reply}}</p>
  </div>
  <p>If you have any further questions, please don't hesitate to contact us.</p>
</body>
</html>`))

// ReplyEmail builds the email sent to a customer when an admin records a
// reply on their message.
func ReplyEmail(to, name, replyContent, originalSubject string) (Email, error) {
	var buf bytes.Buffer
	err := replyTmpl.Execute(&buf, struct {
		Name  string
		Reply template.HTML
	}{
		Name:  name,
		Reply: template.HTML(strings.ReplaceAll(template.HTMLEscapeString(replyContent), "\n", "<br>")),
	})
	if err != nil {
		return Email{}, fmt.Errorf("failed to render reply email: %w", err)
	}

	return Email{
		To:      to,
		Subject: "Re: " + originalSubject,
		HTML:    buf.String(),
		Text:    fmt.Sprintf("Dear %s,\n\nOur response:\n%s\n", name, replyContent),
	}, nil
}

// NotificationData carries the contact form fields shown in the admin
// notification email.
type NotificationData struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Subject     string
	Body        string
	Priority    string
	Source      string
	SubmittedAt time.Time
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;max-width:600px;margin:0 auto;padding:20px">
  <h2>New contact form submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
  {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <p><strong>Priority:</strong> {{.Priority}}</p>
  <p><strong>Source:</strong> {{.Source}}</p>
  <div style="background:#e9ecef;padding:20px">{{.Body}}</div>
  <p style="color:#6c757d;font-size:12px">Submitted {{.SubmittedAt.Format "2006-01-02 15:04:05 MST"}}</p>
</body>
</html>`))

// AdminNotification builds the email sent to the configured admin address
// when a new contact message arrives.
func AdminNotification(adminEmail string, data NotificationData) (Email, error) {
	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("failed to render admin notification: %w", err)
	}

	return Email{
		To:      adminEmail,
		Subject: "New Contact Form Submission: " + data.Subject,
		HTML:    buf.String(),
	}, nil
}
