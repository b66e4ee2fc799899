package mailer

import (
	"fmt"

	"github.com/prem7151/Kashtex-Agency/internal/models"
)

func ContactNotification(contact *models.Contact) Notification {
	body := fmt.Sprintf(
		"New contact form submission\n\nFrom: %s (%s)\nSubject: %s\n\n%s\n",
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
	)

	return Notification{
		Subject: fmt.Sprintf("New Contact: %s", contact.Subject),
		Body:    body,
	}
}

func AppointmentNotification(ap *models.Appointment) Notification {
	body := fmt.Sprintf(
		"New appointment booked\n\nClient: %s (%s)\nPhone: %s\nService: %s\nDate: %s\nTime: %s\n",
		ap.Name,
		ap.Email,
		ap.Phone,
		ap.Service,
		ap.Date,
		ap.Time,
	)
	if ap.Details != "" {
		body += fmt.Sprintf("\nAdditional details:\n%s\n", ap.Details)
	}

	return Notification{
		Subject: fmt.Sprintf("New Appointment: %s - %s", ap.Name, ap.Service),
		Body:    body,
	}
}
