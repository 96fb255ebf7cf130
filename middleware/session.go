package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookie = "cart_id"

// One year; the cart survives browser restarts.
const cartCookieMaxAge = 365 * 24 * 60 * 60

// CartSessionMiddleware assigns each browser profile a stable cart id via a
// cookie. Forged or malformed ids are replaced rather than rejected.
func CartSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cartCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetCookie(cartCookie, id, cartCookieMaxAge, "/", "", false, true)
		}

		c.Set("cart_id", id)
		c.Next()
	}
}
