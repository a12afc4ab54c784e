package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of YAML scenes")
	flag.Parse()

	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Render with http://localhost:%d/api/image?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
