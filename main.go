package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides PORT)")
	flag.Parse()

	listen := *addr
	if listen == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		listen = ":" + port
	}

	game := NewGame()
	go game.Run()

	hub := NewHub(game)
	go hub.Run()

	server := &http.Server{
		Addr:    listen,
		Handler: SetupRoutes(hub),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("game server listening on %s", listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-stop
	log.Println("shutting down")
	server.Close()
	game.Stop()
}
