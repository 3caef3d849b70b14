package utils

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// GenerateUPIQR génère le QR du deep link UPI en base64,
// prêt à mettre dans <img src="...">.
// Le montant est une chaîne libre : le serveur ne fait aucune arithmétique dessus.
func GenerateUPIQR(payeeVPA, payeeName, amount, note string) (string, error) {
	q := url.Values{}
	q.Set("pa", payeeVPA)
	q.Set("pn", payeeName)
	if amount != "" {
		q.Set("am", amount)
	}
	q.Set("cu", "INR")
	if note != "" {
		q.Set("tn", note)
	}

	link := fmt.Sprintf("upi://pay?%s", q.Encode())

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
