package main

import (
	"log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
