package main

import (
	"log"

	"opportune-web/internal/server"
)

func main() {
	srv := server.NewServer()

	log.Printf("Opportune web listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Cannot start server: %s", err)
	}
}
