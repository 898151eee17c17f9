package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

var skipPaths = map[string]bool{
	"/health": true,
}

// Logger logs one line per request with colored method/status, latency and
// the authenticated subject when present.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipPaths[path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		method := c.Request.Method

		line := colorCyan + "[http]" + colorReset +
			" " + methodColor(method) + method + colorReset +
			" " + path +
			" " + statusColor(status) + strconv.Itoa(status) + colorReset +
			" " + latency.String()

		if subject := c.GetString("subject"); subject != "" {
			line += " subject=" + subject
		}
		if query := c.Request.URL.RawQuery; query != "" {
			line += " query=" + query
		}

		log.Print(line)
	}
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return colorGreen
	case "POST":
		return colorBlue
	case "PUT":
		return colorYellow
	case "DELETE":
		return colorRed
	default:
		return colorWhite
	}
}

func statusColor(status int) string {
	switch {
	case status >= 500:
		return colorRed
	case status >= 400:
		return colorYellow
	default:
		return colorGreen
	}
}
