package tcp

import (
	"strings"

	"icecreams/internal/app/server/api/router"
)

const headerTerminator = "\r\n\r\n"

// Parse reads the request line and body out of the bytes of a single read.
// It never fails: missing parts come back empty and simply match no route.
// Method and path are taken verbatim, percent escapes included.
func Parse(raw []byte) router.Request {
	text := strings.ToValidUTF8(string(raw), "\uFFFD")

	var req router.Request
	head := text
	if i := strings.Index(text, headerTerminator); i >= 0 {
		head = text[:i]
		req.Body = text[i+len(headerTerminator):]
	}

	line := head
	if i := strings.IndexAny(head, "\r\n"); i >= 0 {
		line = head[:i]
	}

	fields := strings.Fields(line)
	if len(fields) > 0 {
		req.Method = fields[0]
	}
	if len(fields) > 1 {
		req.Path = fields[1]
	}
	return req
}
