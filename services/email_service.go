package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/axionlabs/axion-backend/config"
	"github.com/axionlabs/axion-backend/logger"
	"github.com/axionlabs/axion-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

// Mailer is the outbound notification surface used by handlers. Failures are
// logged but never surfaced to the client.
type Mailer interface {
	SendContactNotification(ctx context.Context, contact *types.Contact) error
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

var _ Mailer = (*EmailService)(nil)

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress,
		"admin", logger.MaskEmail(cfg.AdminAddress))
	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "axion_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "axion_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "axion_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// SendContactNotification emails the admin inbox about a new contact inquiry.
func (s *EmailService) SendContactNotification(ctx context.Context, contact *types.Contact) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	tmpl, err := template.New("contact").Parse(contactNotificationTemplate)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to parse email template", "error", err)
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var htmlContent bytes.Buffer
	if err := tmpl.Execute(&htmlContent, contact); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute email template", "error", err)
		return fmt.Errorf("failed to execute template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{s.config.AdminAddress},
		Subject: fmt.Sprintf("New Contact Inquiry from %s", contact.FullName),
		Html:    htmlContent.String(),
	}

	_, err = s.client.Emails.Send(params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send contact notification",
			"error", err,
			"contact_id", contact.ID,
			"email", logger.MaskEmail(contact.Email))
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Contact notification sent",
		"contact_id", contact.ID,
		"email", logger.MaskEmail(contact.Email))

	return nil
}

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Inquiry</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #1A73E8;
            font-size: 24px;
            margin-bottom: 20px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        td {
            padding: 8px 12px;
            font-size: 15px;
            border-bottom: 1px solid #eeeeee;
        }
        td.label {
            font-weight: bold;
            width: 30%;
            color: #555555;
        }
        .details {
            margin-top: 20px;
            font-size: 15px;
            line-height: 1.6;
            white-space: pre-wrap;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>New Contact Inquiry from {{.FullName}}</h1>
        <table>
            <tr><td class="label">Name</td><td>{{.FullName}}</td></tr>
            <tr><td class="label">Email</td><td>{{.Email}}</td></tr>
            <tr><td class="label">Phone</td><td>{{.Phone}}</td></tr>
            <tr><td class="label">Company</td><td>{{.Company}}</td></tr>
            <tr><td class="label">Country</td><td>{{.Country}}</td></tr>
            <tr><td class="label">Job Title</td><td>{{.JobTitle}}</td></tr>
        </table>
        <div class="details">{{.JobDetails}}</div>
    </div>
</body>
</html>`
