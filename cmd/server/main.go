package main

import "github.com/spec-kit/crm-backend/internal/server"

func main() {
	server.Main(server.Entrypoint{
		Name:        "server",
		DefaultPort: 3002,
		RootMessage: "Server running via cmd/server",
		RootDetails: true,
	})
}
