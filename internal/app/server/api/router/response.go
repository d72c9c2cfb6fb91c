package router

// Status is one of the three outcomes the service produces.
type Status int

const (
	StatusOK            Status = 200
	StatusNotFound      Status = 404
	StatusInternalError Status = 500
)

// StatusLine is the literal HTTP status line written for s.
func (s Status) StatusLine() string {
	switch s {
	case StatusOK:
		return "HTTP/1.1 200 OK"
	case StatusNotFound:
		return "HTTP/1.1 404 NOT FOUND"
	default:
		return "HTTP/1.1 500 INTERNAL SERVER ERROR"
	}
}

type Response struct {
	Status Status
	Body   string
}

func OK(body string) Response       { return Response{Status: StatusOK, Body: body} }
func NotFound(body string) Response { return Response{Status: StatusNotFound, Body: body} }
func InternalError(body string) Response {
	return Response{Status: StatusInternalError, Body: body}
}
