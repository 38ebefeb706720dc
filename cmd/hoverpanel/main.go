package main

import (
	"fmt"
	"log"
	"os"

	"github.com/TanaroSch/hover-panel/internal/app"
	"github.com/TanaroSch/hover-panel/internal/config"
	"github.com/TanaroSch/hover-panel/internal/resources"
	"github.com/TanaroSch/hover-panel/internal/ui"
)

const version = "v0.3.1"

func main() {
	log.Printf("Hover Panel %s starting...", version)

	store := config.NewStore(config.DefaultPath())
	if store.Path() == "" {
		log.Println("Warning: Could not resolve a config directory; preferences will not persist.")
	}

	icon, err := resources.GetIcon()
	if err != nil {
		log.Printf("Warning: Failed to load embedded icon: %v", err)
	}
	ui.InitGlobalNotifications(true, "Hover Panel", icon)

	// Create and run the application
	application := app.New(store, version)

	// Handle any panics during execution
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	// Run the application
	application.Run()
}
