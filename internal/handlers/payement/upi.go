package payement

import (
	"net/http"
	"os"

	"farmlink_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

//
// 📱 GET /api/payment/upi-qr?amount=&note=
//
// L'écran de paiement propose aussi UPI : on renvoie le QR du deep link
// upi://pay que l'app affiche à côté des boutons GPay/PhonePe/Paytm.
func (h *Handler) UPIQR(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	payeeVPA := os.Getenv("UPI_PAYEE_VPA")
	payeeName := os.Getenv("UPI_PAYEE_NAME")
	if payeeVPA == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "UPI non configuré"})
		return
	}
	if payeeName == "" {
		payeeName = "FarmLink"
	}

	qr, err := utils.GenerateUPIQR(payeeVPA, payeeName, c.Query("amount"), c.Query("note"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr": qr})
}
