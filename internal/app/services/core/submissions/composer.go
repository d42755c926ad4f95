package submissions

import (
	"bytes"
	"fmt"
	"html/template"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/schema"
	"intake-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

var notificationTemplate = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a1a; border-bottom: 2px solid #d4533f; padding-bottom: 10px;">
    New Submission from docrianos.com
  </h2>
  <div style="background: #f5f5f0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{- if .Phone}}
    <p><strong>Phone:</strong> {{.Phone}}</p>
    {{- end}}
    {{- if .Location}}
    <p><strong>Preferred Location:</strong> {{.Location}}</p>
    {{- end}}
    {{- if .FormType}}
    <p><strong>Form Type:</strong> {{.FormType}}</p>
    {{- end}}
  </div>
  <div style="background: #fff; padding: 20px; border: 1px solid #d4d4d4; border-radius: 8px;">
    <h3 style="color: #1a1a1a; margin-top: 0;">Message/Details:</h3>
    <p style="white-space: pre-wrap;">{{.Details}}</p>
  </div>
  {{- if .Additional}}
  <div style="margin-top: 20px; padding: 15px; background: #f9f9f9; border-radius: 8px;">
    <h4 style="color: #666; margin-top: 0;">Additional Information:</h4>
    <pre style="background: #fff; padding: 10px; border-radius: 4px; overflow-x: auto; font-size: 12px;">{{.Additional}}</pre>
  </div>
  {{- end}}
  <hr style="border: none; border-top: 1px solid #d4d4d4; margin: 30px 0;" />
  <p style="color: #666; font-size: 12px;">
    This email was sent from the contact form on docrianos.com
  </p>
</div>
`))

type templateData struct {
	Name       string
	Email      string
	Phone      string
	Location   string
	FormType   string
	Details    string
	Additional string
}

// Offices are the inboxes notifications are routed to.
type Offices struct {
	SanFrancisco string
	Sonoma       string
}

// Composer turns a validated submission into an office notification.
type Composer struct {
	fromEmail  string
	senderName string
	offices    Offices
	now        func() time.Time
}

func NewComposer(fromEmail, senderName string, offices Offices) *Composer {
	return &Composer{
		fromEmail:  fromEmail,
		senderName: senderName,
		offices:    offices,
		now:        time.Now,
	}
}

func (c *Composer) Compose(flowType schema.FlowType, form requests.Values) (*requests.Notification, error) {
	env, err := envelopeFor(flowType, form)
	if err != nil {
		return nil, err
	}

	name := env.displayName()
	data := templateData{
		Name:     name,
		Email:    env.Email,
		Phone:    env.Phone,
		Location: env.Location,
		FormType: env.FormType,
		Details:  env.Details,
	}
	if env.Extra != nil {
		raw, err := json.MarshalIndent(env.Extra, "", "  ")
		if err != nil {
			return nil, err
		}
		data.Additional = string(raw)
	}

	var html bytes.Buffer
	if err := notificationTemplate.Execute(&html, data); err != nil {
		return nil, err
	}

	return &requests.Notification{
		ID:        utils.GenerateNotificationID(),
		FormType:  env.FormType,
		Subject:   fmt.Sprintf(constvars.EmailSubjectFormat, env.FormType, name),
		From:      fmt.Sprintf(constvars.EmailFromFormat, c.senderName, c.fromEmail),
		To:        c.Recipients(env.Location),
		ReplyTo:   env.Email,
		HTMLBody:  html.String(),
		TextBody:  textBody(data),
		CreatedAt: c.now().UTC().Format(time.RFC3339),
	}, nil
}

// Recipients picks the office inboxes for a location code. No location, or
// both, goes to both offices.
func (c *Composer) Recipients(location string) []string {
	switch location {
	case locationSonoma:
		return []string{c.offices.Sonoma}
	case "", locationBoth:
		return []string{c.offices.SanFrancisco, c.offices.Sonoma}
	default:
		return []string{c.offices.SanFrancisco}
	}
}

func envelopeFor(flowType schema.FlowType, form requests.Values) (envelope, error) {
	switch f := form.(type) {
	case *requests.ContactForm:
		return contactEnvelope(f), nil
	case *requests.AssessmentForm:
		return assessmentEnvelope(f), nil
	case *requests.ReferralForm:
		return referralEnvelope(f), nil
	case *requests.VirtualCareForm:
		return virtualCareEnvelope(f), nil
	}
	return envelope{}, fmt.Errorf("no notification layout for %s form %T", flowType, form)
}

func textBody(data templateData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", data.Name, data.Email)
	if data.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", data.Phone)
	}
	if data.Location != "" {
		fmt.Fprintf(&b, "Preferred Location: %s\n", data.Location)
	}
	fmt.Fprintf(&b, "Form Type: %s\n\nMessage/Details:\n%s\n", data.FormType, data.Details)
	if data.Additional != "" {
		fmt.Fprintf(&b, "\nAdditional Information:\n%s\n", data.Additional)
	}
	return b.String()
}
