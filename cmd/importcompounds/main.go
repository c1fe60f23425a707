// Command importcompounds adds compounds from text or .xlsx files to the
// compound override store used by the server.
//
//	importcompounds FILE...
//
// Text files hold one "symbol,formula,mass" line per compound.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"Catalyst/internal/config"
	"Catalyst/internal/elements"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: importcompounds FILE...")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db := elements.Initialize()
	db.LoadOverrides(cfg.CompoundsPath)

	total, failed := 0, 0
	for _, path := range os.Args[1:] {
		n, err := importFile(db, path)
		total += n
		if err != nil {
			failed++
			log.Printf("%s: %v", path, err)
			continue
		}
		log.Printf("%s: %d compounds added", path, n)
	}
	log.Printf("Imported %d compounds into %s", total, cfg.CompoundsPath)
	if failed > 0 {
		os.Exit(1)
	}
}

func importFile(db *elements.Database, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return db.ImportXLSX(f)
	}
	return db.ImportReader(f)
}
