package utils

import (
	"fmt"
	"log"
	"os"

	"farmlink_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmationEmail envoie le récapitulatif de commande au consumer
func SendOrderConfirmationEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@farmlink.app"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
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

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande.
// Prix et poids sont des champs texte, affichés tels quels.
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%s</td>
				<td>%s</td>
			</tr>`, item.Name, item.Weight, item.Price)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>🌾 Merci pour votre commande FarmLink !</h2>
	<p>Commande <b>%s</b> confirmée (paiement %s).</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Produit</th><th>Poids</th><th>Prix</th></tr>
		%s
	</table>
	<p>Montant débité : %.2f %s</p>
	<p>Vos produits arrivent directement de la ferme. 🚜</p>
</body>
</html>`, order.ID, order.PaymentID, itemsHTML, float64(order.Amount)/100, order.Currency)
}
