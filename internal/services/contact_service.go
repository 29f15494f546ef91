package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"crm-dashboard/internal/dto"
	"crm-dashboard/pkg/mailer"

	"go.uber.org/zap"
)

// ContactServiceInterface - формы публичного сайта, которые уходят письмом.
type ContactServiceInterface interface {
	SubmitContactForm(ctx context.Context, payload dto.ContactFormDTO) error
	Apply(ctx context.Context, jobID uint64, payload dto.JobApplicationDTO, cv *dto.PhotoUpload) error
}

type ContactService struct {
	jobs   JobPostingServiceInterface
	mailer mailer.Mailer
	inbox  string
	logger *zap.Logger
}

func NewContactService(jobs JobPostingServiceInterface, m mailer.Mailer, inbox string, logger *zap.Logger) ContactServiceInterface {
	return &ContactService{jobs: jobs, mailer: m, inbox: inbox, logger: logger}
}

func (s *ContactService) SubmitContactForm(ctx context.Context, payload dto.ContactFormDTO) error {
	body := fmt.Sprintf("<p><b>From:</b> %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(payload.Name),
		html.EscapeString(payload.Email),
		paragraphs(payload.Message),
	)
	return s.mailer.Send(ctx, mailer.Message{
		To:      []string{s.inbox},
		ReplyTo: payload.Email,
		Subject: "Contact form: " + payload.Name,
		HTML:    body,
	})
}

// Apply: откликнуться можно только на видимую публично вакансию.
// Письмо уходит на applyEmail вакансии, а если его нет, в общий ящик.
func (s *ContactService) Apply(ctx context.Context, jobID uint64, payload dto.JobApplicationDTO, cv *dto.PhotoUpload) error {
	job, err := s.jobs.GetPublicJob(ctx, jobID)
	if err != nil {
		return err
	}

	to := s.inbox
	if job.ApplyEmail != nil && strings.TrimSpace(*job.ApplyEmail) != "" {
		to = strings.TrimSpace(*job.ApplyEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p><b>Position:</b> %s (%s)</p>", html.EscapeString(job.JobRole), html.EscapeString(job.CompanyName))
	fmt.Fprintf(&b, "<p><b>Name:</b> %s</p>", html.EscapeString(payload.FullName))
	fmt.Fprintf(&b, "<p><b>Email:</b> %s</p>", html.EscapeString(payload.Email))
	if payload.PhoneNumber != "" {
		fmt.Fprintf(&b, "<p><b>Phone:</b> %s</p>", html.EscapeString(payload.PhoneNumber))
	}
	if payload.Message != "" {
		fmt.Fprintf(&b, "<p>%s</p>", paragraphs(payload.Message))
	}

	msg := mailer.Message{
		To:      []string{to},
		ReplyTo: payload.Email,
		Subject: fmt.Sprintf("Application: %s - %s", job.JobRole, payload.FullName),
		HTML:    b.String(),
	}
	if cv != nil {
		msg.Attachments = []mailer.Attachment{{Name: cv.FileName, ContentType: cv.ContentType, Data: cv.Data}}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return err
	}
	s.logger.Info("Отклик на вакансию отправлен", zap.Uint64("jobPostingID", jobID), zap.Bool("withCV", cv != nil))
	return nil
}

func paragraphs(text string) string {
	return strings.ReplaceAll(html.EscapeString(strings.TrimSpace(text)), "\n", "<br>")
}
