package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookieName = "cart_session"

// SessionMiddleware gives every visitor a cart session token. The token only
// identifies the session cart in the cart store; it carries no identity.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cartCookieName)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(cartCookieName, token, 86400, "/", "", false, true)
		}
		c.Set("cart_token", token)
		c.Next()
	}
}
