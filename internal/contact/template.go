package contact

import (
	"fmt"
	"time"

	"github.com/aymerick/raymond"
)

const subjectTemplate = `New enquiry from {{{email}}}`

const textTemplate = `New message from the ELOQ website contact form.

From: {{{email}}}
Received: {{received}}

{{{message}}}
`

const htmlTemplate = `<html><body style="font-family:Helvetica,Arial,sans-serif;color:#111">
<h2 style="letter-spacing:-0.02em">New enquiry</h2>
<p><strong>From:</strong> <a href="mailto:{{email}}">{{email}}</a><br>
<strong>Received:</strong> {{received}}</p>
<p style="white-space:pre-wrap;border-left:2px solid #ff3300;padding-left:12px">{{message}}</p>
</body></html>`

// Templates renders the notification email with Handlebars. Double-stash
// values are HTML-escaped; the subject and text body use triple-stash.
type Templates struct {
	subject *raymond.Template
	text    *raymond.Template
	html    *raymond.Template
}

// RenderResult contains the rendered email content
type RenderResult struct {
	Subject string
	HTML    string
	Text    string
}

func NewTemplates() (*Templates, error) {
	subject, err := raymond.Parse(subjectTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse subject template: %w", err)
	}
	text, err := raymond.Parse(textTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}
	html, err := raymond.Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	return &Templates{subject: subject, text: text, html: html}, nil
}

// Render fills the templates for msg.
func (t *Templates) Render(msg Message, received time.Time) (*RenderResult, error) {
	ctx := map[string]interface{}{
		"email":    msg.Email,
		"message":  msg.Message,
		"received": received.UTC().Format(time.RFC1123),
	}

	subject, err := t.subject.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	text, err := t.text.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	html, err := t.html.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	return &RenderResult{Subject: subject, HTML: html, Text: text}, nil
}
