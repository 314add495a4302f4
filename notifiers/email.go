package notifiers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/models"
)

//go:embed templates/outreach.html
var emailTemplates embed.FS

var outreachTemplates = template.Must(template.New("emails").ParseFS(emailTemplates, "templates/*.html"))

type Mailer struct {
	smtpHost string
	smtpPort string
	from     string
	password string
	appBase  string
}

func NewMailer(smtpHost, smtpPort, from, password, appBase string) *Mailer {
	return &Mailer{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		from:     from,
		password: password,
		appBase:  strings.TrimRight(appBase, "/"),
	}
}

// OutreachEmail renders one queued outreach job into a sendable email.
// Placeholders are substituted from the job's contact and opportunity
// fields; the body is wrapped in the outreach HTML shell.
func (h *Mailer) OutreachEmail(job data.OutreachJob) (models.Email, error) {
	subject := RenderPlaceholders(job.Subject, job)
	body := RenderPlaceholders(job.Body, job)
	body = strings.ReplaceAll(body, "\n", "<br>")

	var buf bytes.Buffer
	tmplData := struct {
		Body template.HTML
	}{
		Body: template.HTML(body),
	}
	if err := outreachTemplates.ExecuteTemplate(&buf, "outreach.html", tmplData); err != nil {
		return models.Email{}, fmt.Errorf("render outreach template: %w", err)
	}

	return models.Email{
		To:      job.RecipientEmail,
		Subject: subject,
		Body:    buf.String(),
	}, nil
}

func (h *Mailer) Send(mail models.Email) error {
	message := fmt.Sprintf(`From: pitchpool <%s>
To: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, h.from, mail.To, mail.Subject, mail.Body)

	auth := smtp.PlainAuth("", h.from, h.password, h.smtpHost)
	addr := fmt.Sprintf("%s:%s", h.smtpHost, h.smtpPort)
	err := smtp.SendMail(addr, auth, h.from, []string{mail.To}, []byte(message))
	if err != nil {
		slog.Error("Failed to send email", "error", err)
		return err
	}

	slog.Info("email sent", "recipient", mail.To, "subject", mail.Subject)
	return nil
}
