package main

import "cadpro-backend/cmd/server"

func main() {
	server.Init()
	server.Run()
}
