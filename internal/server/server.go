// Package server wires the page routes to a gin engine and builds the
// http.Server the app runs on.
package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"opportune-web/internal/api"
	"opportune-web/internal/savedjobs"
	"opportune-web/internal/session"
)

// Server holds the app's dependencies: the backend API client, the
// session manager, and the saved-jobs store.
type Server struct {
	port int

	API      *api.Client
	Sessions *session.Manager
	Saved    *savedjobs.Store
}

// NewServer constructs the app and the http.Server it listens on.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 3000
	}

	client := api.New("")

	saved, err := savedjobs.Open("")
	if err != nil {
		log.Fatalf("Saved-jobs store failed to open: %s", err)
	}

	s := &Server{
		port:     port,
		API:      client,
		Sessions: session.NewManager(client),
		Saved:    saved,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
