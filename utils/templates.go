package utils

import (
	"bytes"
	"html/template"
)

var verifyEmailTmpl = template.Must(template.New("verify").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome{{if .Name}}, {{.Name}}{{end}}!</h2>
  <p>Thanks for signing up. Please confirm your email address to activate
  your account.</p>
  <p>
    <a href="{{.Link}}" style="background-color: #4CAF50; color: white; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Verify Email</a>
  </p>
  <p>Or copy this link into your browser:<br>{{.Link}}</p>
  <p>This link expires in {{.ExpiryHours}} hours. If you didn't create an
  account, you can ignore this message.</p>
</body>
</html>`))

var resetEmailTmpl = template.Must(template.New("reset").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password Reset</h2>
  <p>Hi{{if .Name}} {{.Name}}{{end}},</p>
  <p>We received a request to reset your password. Click below to choose a
  new one.</p>
  <p>
    <a href="{{.Link}}" style="background-color: #2196F3; color: white; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Reset Password</a>
  </p>
  <p>Or copy this link into your browser:<br>{{.Link}}</p>
  <p>This link expires in {{.ExpiryHours}} hours. If you didn't ask for a
  reset, no action is needed.</p>
</body>
</html>`))

type emailContext struct {
	Name        string
	Link        string
	ExpiryHours int
}

func renderVerifyEmail(name, link string) (string, error) {
	var buf bytes.Buffer
	if err := verifyEmailTmpl.Execute(&buf, emailContext{Name: name, Link: link, ExpiryHours: 24}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderResetEmail(name, link string) (string, error) {
	var buf bytes.Buffer
	if err := resetEmailTmpl.Execute(&buf, emailContext{Name: name, Link: link, ExpiryHours: 1}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
