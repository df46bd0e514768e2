package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"time"

	"garagehub/pkg/models"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
)

// EmailService sends callback notifications using SES or SMTP
type EmailService struct {
	// SMTP configuration
	smtpHost     string
	smtpPort     string
	smtpUser     string
	smtpPassword string
	fromEmail    string

	// AWS SES configuration
	sesClient *ses.SES
	useSES    bool
}

// NewEmailService creates a new email service from the environment.
// AWS SES takes precedence; SMTP is the fallback.
func NewEmailService() (*EmailService, error) {
	emailService := &EmailService{}

	// Check for AWS SES configuration first
	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	sesFromEmail := os.Getenv("SES_FROM_EMAIL")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" && sesFromEmail != "" {
		sess, err := session.NewSession(&aws.Config{
			Region:      aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(awsAccessKey, awsSecretKey, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}

		emailService.sesClient = ses.New(sess)
		emailService.fromEmail = sesFromEmail
		emailService.useSES = true
		return emailService, nil
	}

	// Fallback to SMTP configuration
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPassword := os.Getenv("SMTP_PASSWORD")
	fromEmail := os.Getenv("FROM_EMAIL")

	if smtpHost == "" || smtpPort == "" || smtpUser == "" || smtpPassword == "" || fromEmail == "" {
		return nil, fmt.Errorf("email service not configured. Set either AWS SES credentials (AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, SES_FROM_EMAIL) or SMTP credentials (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, FROM_EMAIL)")
	}

	emailService.smtpHost = smtpHost
	emailService.smtpPort = smtpPort
	emailService.smtpUser = smtpUser
	emailService.smtpPassword = smtpPassword
	emailService.fromEmail = fromEmail
	return emailService, nil
}

var callbackTemplate = template.Must(template.New("callback").Parse(`
<h2>New callback request for {{.BusinessName}}</h2>
<p>Hi {{.ContactName}},</p>
<p>A visitor has asked to be called back:</p>
<ul>
	<li><strong>Name:</strong> {{.CustomerName}}</li>
	<li><strong>Phone:</strong> {{.CustomerPhone}}</li>
	<li><strong>Requested at:</strong> {{.RequestedAt}}</li>
</ul>
`))

// SendCallbackRequest emails the garage's callback contact about a new
// callback request
func (s *EmailService) SendCallbackRequest(garage *models.Garage, request *models.CallbackRequest) error {
	if garage.CallbackContactEmail == "" {
		return fmt.Errorf("garage %s has no callback contact email", garage.Slug)
	}

	requestedAt := request.CreatedAt
	if requestedAt.IsZero() {
		requestedAt = time.Now()
	}

	var body bytes.Buffer
	err := callbackTemplate.Execute(&body, map[string]string{
		"BusinessName":  garage.BusinessName,
		"ContactName":   garage.CallbackContactName,
		"CustomerName":  request.CustomerName,
		"CustomerPhone": request.CustomerPhone,
		"RequestedAt":   requestedAt.Format(time.RFC1123),
	})
	if err != nil {
		return fmt.Errorf("failed to render callback email: %w", err)
	}

	subject := fmt.Sprintf("Callback request from %s", request.CustomerName)
	return s.SendEmail([]string{garage.CallbackContactEmail}, subject, body.String())
}

// SendEmail sends an email using SES or SMTP
func (s *EmailService) SendEmail(to []string, subject, body string) error {
	if s.useSES {
		return s.sendEmailWithSES(to, subject, body)
	}
	return s.sendEmailWithSMTP(to, subject, body)
}

// sendEmailWithSES sends email using Amazon SES
func (s *EmailService) sendEmailWithSES(to []string, subject, body string) error {
	if s.sesClient == nil {
		return fmt.Errorf("SES client not configured")
	}

	var toAddresses []*string
	for _, addr := range to {
		toAddresses = append(toAddresses, aws.String(addr))
	}

	input := &ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: toAddresses,
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Html: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(body),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
		},
		Source: aws.String(s.fromEmail),
	}

	if _, err := s.sesClient.SendEmail(input); err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	return nil
}

// sendEmailWithSMTP sends email using SMTP
func (s *EmailService) sendEmailWithSMTP(to []string, subject, body string) error {
	if s.smtpHost == "" {
		return fmt.Errorf("SMTP service not configured")
	}

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.fromEmail, to[0], subject, body)

	auth := smtp.PlainAuth("", s.smtpUser, s.smtpPassword, s.smtpHost)

	if err := smtp.SendMail(s.smtpHost+":"+s.smtpPort, auth, s.fromEmail, to, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}
