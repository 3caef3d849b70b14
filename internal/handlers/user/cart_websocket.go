package user

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"farmlink_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket gère la synchronisation temps réel du panier
func (h *CartHandler) CartWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	// S'abonner au canal Redis pour ce user
	pubsub := database.Redis.Subscribe(ctx, "cartfeed:"+userID)
	defer pubsub.Close()

	ch := pubsub.Channel()

	// Message de connexion + snapshot initial du panier
	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	if items, err := h.Carts.List(ctx, userID); err == nil {
		conn.WriteJSON(map[string]interface{}{
			"type":  "cart_updated",
			"items": items,
			"count": len(items),
		})
	}

	// Boucle d'écoute
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}

			// Les handlers publient déjà le payload complet
			var update map[string]interface{}
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				continue
			}

			if err := conn.WriteJSON(update); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
