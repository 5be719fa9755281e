// Package mailer delivers contact-form submissions through SES. All user
// input is HTML-entity-escaped before it is interpolated into the message
// bodies.
package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the basic shape check.
func ValidEmail(address string) bool {
	return emailPattern.MatchString(address)
}

// Client is the subset of the SES API the mailer uses.
type Client interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Message is one contact-form submission, pre-validation.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Mailer sends contact messages to the site owner's inbox.
type Mailer struct {
	client    Client
	sender    string
	recipient string
}

// New builds a Mailer. An empty sender disables delivery: messages are
// logged and reported as sent, the local development behavior.
func New(client Client, sender, recipient string) *Mailer {
	return &Mailer{
		client:    client,
		sender:    sender,
		recipient: recipient,
	}
}

// Send escapes the submission and delivers it with Reply-To pointing at the
// submitter.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	name := Sanitize(msg.Name)
	email := Sanitize(msg.Email)
	subject := Sanitize(msg.Subject)
	if subject == "" {
		subject = "New Contact Form Submission"
	}
	body := Sanitize(msg.Body)

	if m.sender == "" {
		log.Ctx(ctx).Info().
			Str("from", fmt.Sprintf("%s <%s>", name, email)).
			Str("subject", subject).
			Msg("mail delivery disabled, contact message logged only")
		return nil
	}

	text := fmt.Sprintf(
		"New message from the website contact form:\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		name, email, subject, body)

	html := fmt.Sprintf(
		`<html><body><h2>New Contact Form Submission</h2>`+
			`<p><b>Name:</b> %s</p>`+
			`<p><b>Email:</b> <a href="mailto:%s">%s</a></p>`+
			`<p><b>Subject:</b> %s</p>`+
			`<p><b>Message:</b></p><p>%s</p>`+
			`</body></html>`,
		name, email, email, subject, strings.ReplaceAll(body, "\n", "<br>"))

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{m.recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String("[White Rose Speakers] " + subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")},
				Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
			},
		},
		ReplyToAddresses: []string{email},
	})
	if err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

// Sanitize HTML-entity-escapes angle brackets and quotes and trims
// whitespace.
func Sanitize(input string) string {
	replacer := strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
	)
	return strings.TrimSpace(replacer.Replace(input))
}
