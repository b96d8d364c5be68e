package service

import (
	"context"
	"fmt"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService returns a SendGrid-backed EmailService. With enabled
// false every send is logged and skipped, which keeps local development
// free of API keys.
func NewEmailService(apiKey, fromEmail, fromName string, enabled bool) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   enabled,
	}
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	if !s.enabled {
		logger.Debug("email disabled, skipping send", "to", toEmail, "subject", subject)
		return nil
	}
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendDonationDecision(ctx context.Context, donorEmail, donorName, title string, approved bool, reason string) error {
	subject := fmt.Sprintf("Your donation %q was approved", title)
	body := fmt.Sprintf("Hello %s,\n\nGood news: your donation %q has been approved and entered the matching pool.\n\nThank you for giving,\nThe GiveHope Team", donorName, title)
	if !approved {
		subject = fmt.Sprintf("Your donation %q was not approved", title)
		body = fmt.Sprintf("Hello %s,\n\nUnfortunately your donation %q could not be approved.", donorName, title)
		if reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", reason)
		}
		body += "\n\nThe GiveHope Team"
	}
	return s.send(donorEmail, donorName, subject, body)
}

func (s *emailService) SendRequestDecision(ctx context.Context, recipientEmail, recipientName, title string, approved bool, reason string) error {
	subject := fmt.Sprintf("Your request %q was approved", title)
	body := fmt.Sprintf("Hello %s,\n\nYour request %q has been approved. We will notify you when a matching donation is found.\n\nThe GiveHope Team", recipientName, title)
	if !approved {
		subject = fmt.Sprintf("Your request %q was not approved", title)
		body = fmt.Sprintf("Hello %s,\n\nUnfortunately your request %q could not be approved.", recipientName, title)
		if reason != "" {
			body += fmt.Sprintf("\n\nReason: %s", reason)
		}
		body += "\n\nThe GiveHope Team"
	}
	return s.send(recipientEmail, recipientName, subject, body)
}

func (s *emailService) SendMatchCreated(ctx context.Context, email, name, donationTitle, requestTitle string) error {
	subject := "A match has been made"
	body := fmt.Sprintf("Hello %s,\n\nThe donation %q has been matched with the request %q. An NGO coordinator will arrange the delivery.\n\nThe GiveHope Team", name, donationTitle, requestTitle)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendDeliveryCompleted(ctx context.Context, email, name, donationTitle string) error {
	subject := "Delivery completed"
	body := fmt.Sprintf("Hello %s,\n\nThe delivery for %q is complete. Thank you for being part of GiveHope.\n\nThe GiveHope Team", name, donationTitle)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPendingApprovalsReminder(ctx context.Context, adminEmail string, pendingDonations, pendingRequests int) error {
	subject := "Items awaiting your review"
	body := fmt.Sprintf("Hello,\n\nThere are %d donation(s) and %d request(s) waiting for approval.\n\nThe GiveHope Team", pendingDonations, pendingRequests)
	return s.send(adminEmail, "", subject, body)
}

func (s *emailService) SendWeeklyDigest(ctx context.Context, adminEmail string, stats *domain.Statistics) error {
	subject := "GiveHope weekly digest"
	body := fmt.Sprintf("Hello,\n\nThis week on GiveHope:\n\nDonations: %d\nRequests: %d\nSuccessful matches: %d\nActive donors: %d\nFamilies helped: %d\n\nThe GiveHope Team",
		stats.TotalDonations, stats.TotalRequests, stats.SuccessfulMatches, stats.ActiveDonors, stats.FamiliesHelped)
	return s.send(adminEmail, "", subject, body)
}
