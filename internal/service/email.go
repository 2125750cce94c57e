package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed notifier. With an empty API key
// every send is a silent no-op, which keeps local development mail-free.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, body string) error {
	if s.apiKey == "" {
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

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

func (s *emailService) SendRentalRequestNotification(ctx context.Context, ownerEmail, renterName, itemName string) error {
	subject := "New Rental Request"
	body := fmt.Sprintf("%s requested to rent %s.\n\nYou have 3 hours to respond before the request expires.\n\nBest regards,\nThe RentMate Team", renterName, itemName)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendRentalApprovalNotification(ctx context.Context, renterEmail, itemName string) error {
	subject := "Rental Request Approved"
	body := fmt.Sprintf("Your rental request for %s was approved.\n\nBest regards,\nThe RentMate Team", itemName)
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendRentalDeclineNotification(ctx context.Context, renterEmail, itemName, reason string) error {
	subject := "Rental Request Declined"
	body := fmt.Sprintf("Your rental request for %s was declined.\n\nReason: %s\n\nBest regards,\nThe RentMate Team", itemName, reason)
	return s.send(renterEmail, subject, body)
}

func (s *emailService) SendRentalCompletionNotification(ctx context.Context, renterEmail, itemName string, totalPrice float64) error {
	subject := "Rental Completed"
	body := fmt.Sprintf("Your rental of %s is complete. Total amount: %.2f.\n\nBest regards,\nThe RentMate Team", itemName, totalPrice)
	return s.send(renterEmail, subject, body)
}
