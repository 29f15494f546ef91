package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"crm-dashboard/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.sent = append(c.sent, m...)
	return c.err
}

func newTestMailer(s sender) *SMTPMailer {
	m := NewSMTPMailer(config.MailConfig{Host: "localhost", Port: 25, From: "crm@example.com"}, zap.NewNop())
	m.dialer = s
	return m
}

func TestSMTPMailer_SendsWithAttachment(t *testing.T) {
	capture := &captureSender{}
	m := newTestMailer(capture)

	err := m.Send(context.Background(), Message{
		To:          []string{"hr@example.com"},
		ReplyTo:     "jane@example.com",
		Subject:     "Application: Go developer",
		HTML:        "<p>Hello</p>",
		Attachments: []Attachment{{Name: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}},
	})

	require.NoError(t, err)
	require.Len(t, capture.sent, 1)
	msg := capture.sent[0]
	assert.Equal(t, []string{"hr@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"jane@example.com"}, msg.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `filename="cv.pdf"`)
}

func TestSMTPMailer_Errors(t *testing.T) {
	m := newTestMailer(&captureSender{err: errors.New("smtp down")})

	err := m.Send(context.Background(), Message{To: []string{"a@example.com"}})
	assert.ErrorContains(t, err, "smtp down")

	err = m.Send(context.Background(), Message{})
	assert.ErrorContains(t, err, "no recipients")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{To: []string{"a@example.com"}}), context.Canceled)
}
