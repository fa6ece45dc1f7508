// Command sitegen packages the web build: it renders the landing page
// from markdown, emits the PWA manifest and service worker, and scales
// the app icons.
package main

import (
	"flag"
	"log"
)

func main() {
	configPath := flag.String("config", "site.yaml", "site config file")
	outDir := flag.String("out", "docs", "output directory")
	flag.Parse()

	site, err := LoadSite(*configPath)
	if err != nil {
		log.Fatalf("sitegen: %v", err)
	}
	if err := site.Generate(*outDir); err != nil {
		log.Fatalf("sitegen: %v", err)
	}
	log.Printf("sitegen: wrote site to %s", *outDir)
}
