package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"
)

type IMailService interface {
	SendMailToNotifyUser(to, subject, body string) error
	SendAccountDecision(to, name string, approved bool) error
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // implicit TLS, usually port 465
	RequireTLS bool

	AppName string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *texttemplate.Template
	log     *zap.Logger
}

// NewSMTPMailService returns a mailer that only logs when no SMTP host is configured.
func NewSMTPMailService(cfg SMTPConfig, log *zap.Logger) IMailService {
	if cfg.Host == "" {
		log.Info("SMTP_HOST not set, account notifications are disabled")
		return noopMailService{log: log}
	}
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl: texttemplate.Must(texttemplate.New("text").Parse(plainTextTemplate)),
		log:     log,
	}
}

func (s *smtpMailService) SendMailToNotifyUser(to, subject, body string) error {
	html, text, err := s.renderEmail(EmailData{
		Title:   subject,
		Intro:   body,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendAccountDecision(to, name string, approved bool) error {
	subject, body := accountDecisionCopy(s.cfg.AppName, name, approved)
	return s.SendMailToNotifyUser(to, subject, body)
}

func accountDecisionCopy(appName, name string, approved bool) (string, string) {
	if approved {
		return "Your account is approved",
			fmt.Sprintf("Hi %s, your %s account has been approved. You can sign in now.", name, appName)
	}
	return "About your account request",
		fmt.Sprintf("Hi %s, we are not able to approve your %s account at this time.", name, appName)
}

type EmailData struct {
	Title   string
	Intro   string
	AppName string
	Year    int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="margin:0;padding:32px 16px;background:#f5f3ff;font-family:-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;color:#1f2937">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:16px;overflow:hidden">
    <div style="padding:24px 32px;font-weight:700;font-size:20px;color:#7c3aed">{{.AppName}}</div>
    <div style="padding:8px 32px 32px">
      <h1 style="font-size:24px;margin:0 0 16px">{{.Title}}</h1>
      <p style="line-height:1.6;margin:0">{{.Intro}}</p>
    </div>
    <div style="padding:16px 32px;font-size:12px;color:#6b7280;text-align:center">&copy; {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n\r\n", boundary, textBody)
	write("--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n\r\n", boundary, htmlBody)
	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = tls.DialWithDialer(&net.Dialer{Timeout: 10 * time.Second}, "tcp", addr, tlsCfg)
	} else {
		conn, err = (&net.Dialer{Timeout: 10 * time.Second}).Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	if s.cfg.FromName == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", s.cfg.FromName), s.cfg.From)
}

type noopMailService struct {
	log *zap.Logger
}

func (n noopMailService) SendMailToNotifyUser(to, subject, _ string) error {
	n.log.Debug("mail skipped", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (n noopMailService) SendAccountDecision(to, _ string, approved bool) error {
	n.log.Debug("account decision mail skipped", zap.String("to", to), zap.Bool("approved", approved))
	return nil
}
