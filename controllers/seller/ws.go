package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/FalcurmartEsui/shopfront-forge-37/notify"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /seller/ws/orders
//
// Subscribes the authenticated seller's dashboard to its new-order events.
// The read loop only detects the peer going away; events flow one way.
func OrderEventsWS(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sellerID(c)
		if !ok {
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		hub.Subscribe(id, conn)
		defer hub.Unsubscribe(id, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
