package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lanternworks/savestore/internal/config"
	"github.com/lanternworks/savestore/internal/server"
)

func main() {
	port := flag.String("port", "", "Server port (overrides PORT)")
	project := flag.String("project", "", "Project name (overrides SAVE_PROJECT)")
	root := flag.String("root", "", "Save root override (overrides SAVE_ROOT)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *project != "" {
		cfg.Store.Project = *project
	}
	if *root != "" {
		cfg.Store.Root = *root
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		if err := srv.Close(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	}
}
