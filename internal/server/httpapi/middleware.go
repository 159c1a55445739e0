package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sagarm/storefront/internal/common"
	"github.com/sagarm/storefront/internal/server/auth"
)

// subjectKey is the gin context key the auth middleware stores the
// verified token subject under.
const subjectKey = "subject"

// Auth verifies the bearer token on the request and stores the subject in
// the gin context. Requests without a valid token are rejected with 401.
func Auth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No authorization header provided."})
			return
		}

		token := strings.TrimPrefix(header, common.BearerPrefix)
		if token == header || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided."})
			return
		}

		subject, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed to verify."})
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}
