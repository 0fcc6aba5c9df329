package main

import (
	"github.com/gamercv/gamercv-api/cmd/server"
)

func main() {
	server.NewServer().Run()
}
