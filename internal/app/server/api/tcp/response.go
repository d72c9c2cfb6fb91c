package tcp

import (
	"strconv"
	"strings"

	"icecreams/internal/app/server/api/router"
)

// Encode frames a response for the wire. Only successful responses carry a
// Content-Type; every response carries Content-Length and ends the connection.
func Encode(resp router.Response) []byte {
	var b strings.Builder
	b.Grow(len(resp.Body) + 96)

	b.WriteString(resp.Status.StatusLine())
	b.WriteString("\r\n")
	if resp.Status == router.StatusOK {
		b.WriteString("Content-Type: application/json\r\n")
	}
	b.WriteString("Content-Length: ")
	b.WriteString(strconv.Itoa(len(resp.Body)))
	b.WriteString("\r\n\r\n")
	b.WriteString(resp.Body)

	return []byte(b.String())
}
