package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"projectstore_backend/internal/models"
)

// Mailer est volontairement minimal : l'envoi est fire-and-forget, un
// échec ne doit jamais faire échouer la commande.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@projectstore.dev"
	}

	return &SMTPMailer{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.Host,
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// DownloadLinksHTML génère le mail de confirmation avec les liens de
// téléchargement. Le booléen indique si au moins un article porte un
// lien (sinon on n'envoie rien).
func DownloadLinksHTML(order models.Order) (string, bool) {
	itemsHTML := ""
	for _, item := range order.Items {
		if item.ProjectFiles == "" && item.Documentation == "" {
			continue
		}

		links := ""
		if item.ProjectFiles != "" {
			links += fmt.Sprintf(`<p><strong>Fichiers du projet :</strong> <a href="%s" style="color: #4caf50;">Télécharger le ZIP</a></p>`, item.ProjectFiles)
		}
		if item.Documentation != "" {
			links += fmt.Sprintf(`<p><strong>Documentation :</strong> <a href="%s" style="color: #4caf50;">Télécharger le PDF</a></p>`, item.Documentation)
		}

		itemsHTML += fmt.Sprintf(`
			<div style="margin: 20px 0; padding: 15px; background-color: #f8f8f8; border-radius: 5px;">
				<h2 style="color: #333; margin: 0 0 10px;">%s</h2>
				%s
			</div>`, item.Title, links)
	}

	if itemsHTML == "" {
		return "", false
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Vos téléchargements sont prêts</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; border: 1px solid #e0e0e0; border-radius: 10px; overflow: hidden;">
		<div style="background-color: #f9f9f9; padding: 20px; text-align: center; border-bottom: 1px solid #e0e0e0;">
			<h1 style="color: #333; margin: 0;">Vos téléchargements sont prêts !</h1>
		</div>
		<div style="padding: 20px;">
			<p style="color: #555;">Bonjour %s,</p>
			<p style="color: #555;">Merci pour votre achat ! Voici vos liens de téléchargement :</p>
			%s
			<p style="color: #555; margin-top: 20px;">
				Ces liens restent accessibles pour vos prochains téléchargements.
			</p>
		</div>
		<div style="background-color: #f9f9f9; padding: 15px; text-align: center; border-top: 1px solid #e0e0e0;">
			<p style="color: #888; margin: 0;">Une question ? Contactez notre support.</p>
		</div>
	</div>
</body>
</html>`, order.Address.FirstName, itemsHTML)

	return html, true
}
