package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/arrahmanlabs/waitlist-api/internal/models"
	"github.com/arrahmanlabs/waitlist-api/pkg/constants"
)

func welcomePlainBody(fullName string) string {
	return fmt.Sprintf(
		"As-salamu alaykum %s,\n\n"+
			"Thank you for joining the AR Rahman waitlist. You are now on the list "+
			"for early access to AR-guided prayer with live translation.\n\n"+
			"We will email you as soon as early access opens.\n\n"+
			"The AR Rahman Team",
		fullName,
	)
}

func welcomeHTMLBody(fullName string) string {
	name := html.EscapeString(fullName)

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a7f5a;">As-salamu alaykum %s,</h2>
  <p>Thank you for joining the <strong>AR Rahman</strong> waitlist. You are now on the list for early access to AR-guided prayer with live translation.</p>
  <p>We will email you as soon as early access opens.</p>
  <p style="color: #666;">The AR Rahman Team</p>
</div>`, name)
}

func adminAlertPlainBody(response *models.WaitlistResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New waitlist submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", response.FullName)
	fmt.Fprintf(&b, "Email: %s\n", response.Email)
	if response.Role != "" {
		fmt.Fprintf(&b, "Role: %s\n", response.Role)
	}
	fmt.Fprintf(&b, "Age: %s\n", response.Age)
	fmt.Fprintf(&b, "AR interest: %s\n", response.ARInterest)
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(response.Features, ", "))
	fmt.Fprintf(&b, "Submitted: %s\n", response.CreatedAt.Format(constants.RFC3339DateTimeFormat))

	return b.String()
}

func adminAlertHTMLBody(response *models.WaitlistResponse) string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf(
			`<tr><td style="padding: 4px 12px 4px 0; color: #666;">%s</td><td style="padding: 4px 0;">%s</td></tr>`,
			html.EscapeString(label), html.EscapeString(value),
		)
	}

	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #1a7f5a;">New waitlist submission</h2>`)
	b.WriteString(`<table style="border-collapse: collapse;">`)
	b.WriteString(row("Name", response.FullName))
	b.WriteString(row("Email", response.Email))
	b.WriteString(row("Role", response.Role))
	b.WriteString(row("Age", response.Age))
	b.WriteString(row("AR interest", response.ARInterest))
	b.WriteString(row("Features", strings.Join(response.Features, ", ")))
	b.WriteString(row("Submitted", response.CreatedAt.Format(constants.RFC3339DateTimeFormat)))
	b.WriteString(`</table></div>`)

	return b.String()
}
