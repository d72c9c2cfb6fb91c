package main

import (
	"icecreams/cmd/server/cmd"
)

func main() {
	cmd.Execute()
}
