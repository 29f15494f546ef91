package mailer

import (
	"context"
	"fmt"
	"io"

	"crm-dashboard/pkg/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type Message struct {
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	from   string
	dialer sender
	logger *zap.Logger
}

func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger.Named("mailer"),
	}
}

// Build собирает gomail-сообщение; вынесено отдельно для тестов.
func (m *SMTPMailer) Build(msg Message) (*gomail.Message, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("mailer: no recipients")
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	for _, a := range msg.Attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		gm.Attach(a.Name, settings...)
	}
	return gm, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm, err := m.Build(msg)
	if err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(gm); err != nil {
		m.logger.Error("Не удалось отправить письмо", zap.Strings("to", msg.To), zap.String("subject", msg.Subject), zap.Error(err))
		return fmt.Errorf("mailer: send: %w", err)
	}
	m.logger.Info("Письмо отправлено", zap.Strings("to", msg.To), zap.String("subject", msg.Subject), zap.Int("attachments", len(msg.Attachments)))
	return nil
}
