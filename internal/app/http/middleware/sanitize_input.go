package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeQueryMiddleware strips markup from every query-string value
// using bluemonday. Applied to the public routes, whose inputs are all
// plain tokens (filter, value, order, pg, id).
func SanitizeQueryMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		changed := false
		for key, vals := range q {
			for i, v := range vals {
				if clean := policy.Sanitize(v); clean != v {
					vals[i] = clean
					changed = true
				}
			}
			q[key] = vals
		}
		if changed {
			c.Request.URL.RawQuery = q.Encode()
		}

		c.Next()
	}
}
