package middlewares

import (
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

// CORSMiddleware allows cross-origin requests from the browser UI.
func CORSMiddleware() ginext.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	})
}
