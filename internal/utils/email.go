package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

func SendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@sentcandles.com"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "ssl0.ovh.net"
	}

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// PasswordResetHTML génère le corps de l'email de réinitialisation (en
// anglais : il part vers les admins de la boutique, pas vers l'équipe).
func PasswordResetHTML(name, resetLink string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
	<title>Password reset</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Reset your password</h2>
		<p>Hello <b>%s</b>,</p>
		<p>You requested a password reset for your Sent. admin account.</p>

		<p style="text-align: center; margin: 30px 0;">
			<a href="%s" style="background-color: #b45309; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset my password</a>
		</p>

		<p style="font-size: 14px; color: #888; border-left: 3px solid #ffa500; padding-left: 15px; margin-top: 20px;">
			<strong>⚠️ Note:</strong> this link is valid for 1 hour only.
		</p>

		<p style="font-size: 14px; color: #888; margin-top: 20px;">
			If you did not request this reset, you can safely ignore this email. Your current password will remain unchanged.
		</p>

		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>The Sent. team</strong>
		</p>
	</div>
</body>
</html>
	`, name, resetLink)
}
