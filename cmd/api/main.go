package main

import "github.com/spec-kit/crm-backend/internal/server"

func main() {
	server.Main(server.Entrypoint{
		Name:        "api",
		DefaultPort: 3001,
		RootMessage: "CRM Backend API is running!",
	})
}
