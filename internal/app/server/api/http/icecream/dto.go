package icecream

import (
	"icecreams/internal/app/server/api/router"
)

type bodyInput struct {
	RawBody []byte
}

type idInput struct {
	ID string `path:"id" doc:"Ice cream id"`
}

type idBodyInput struct {
	ID      string `path:"id" doc:"Ice cream id"`
	RawBody []byte
}

// output carries a handler response unchanged, so both transports answer alike.
type output struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func toOutput(resp router.Response) *output {
	out := &output{
		Status:      int(resp.Status),
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(resp.Body),
	}
	if resp.Status == router.StatusOK {
		out.ContentType = "application/json"
	}
	return out
}
