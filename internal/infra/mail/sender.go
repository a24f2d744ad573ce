package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// Template lives in the binary so the queue worker has no runtime file
// dependency.
const scanDigestTemplate = `<html>
<body>
	<p>Hi,</p>
	<p>The rate sheet you scanned for <strong>{{.LeadName}}</strong> finished processing.</p>
	{{if gt .Extracted 0}}
	<p>{{.Extracted}} rate/point row(s) were attached as scenarios. Run an analysis to see which leads they fit.</p>
	{{else}}
	<p>No rate/point rows could be read from the sheet. Try a sharper photo.</p>
	{{end}}
	<p>— LoanPulse</p>
</body>
</html>`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendScanDigest(to, leadName string, extracted int) error {
	t, err := template.New("scan_digest").Parse(scanDigestTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse digest template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, ScanDigestData{LeadName: leadName, Extracted: extracted}); err != nil {
		return fmt.Errorf("failed to render digest template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Rate sheet processed for %s", leadName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send digest email: %w", err)
	}

	return nil
}
