package mail

import (
	"fmt"
	"html/template"
	"strings"
)

type templateData struct {
	AppName string
	Name    string
	Link    string
	Token   string
}

var (
	verificationTmpl = template.Must(template.New("verification").Parse(`
<h2>Verify your email address</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for signing up for {{.AppName}}. Please confirm your email address
by clicking the link below. The link expires in 24 hours.</p>
<p><a href="{{.Link}}">Verify my email</a></p>
<p>If the link does not work, open this URL in your browser:</p>
<p>{{.Link}}</p>
<p>If you did not create an account, you can ignore this email.</p>
`))

	welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h2>Welcome to {{.AppName}}!</h2>
<p>Hi {{.Name}},</p>
<p>Your email address is confirmed and your account is ready. Log in and
start saving bookmarks.</p>
`))

	resetTmpl = template.Must(template.New("reset").Parse(`
<h2>Reset your password</h2>
<p>Hi {{.Name}},</p>
<p>We received a request to reset your {{.AppName}} password. The link below
is valid for one hour and can be used once.</p>
<p><a href="{{.Link}}">Choose a new password</a></p>
<p>If you did not request a reset, no action is needed; your password is
unchanged.</p>
`))
)

func render(tmpl *template.Template, data templateData) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
