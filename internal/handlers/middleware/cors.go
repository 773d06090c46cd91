package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS a partir da lista de origens permitidas
// separada por vírgula; "*" libera todas as origens
func CORS(allowedOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true

	origins := make([]string, 0)
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			corsConfig.AllowAllOrigins = true
			corsConfig.AllowCredentials = false
			return cors.New(corsConfig)
		}
		if o != "" {
			origins = append(origins, o)
		}
	}
	corsConfig.AllowOrigins = origins

	return cors.New(corsConfig)
}
