package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// API keys may live in a local .env file; absence is fine.
	_ = godotenv.Load()

	Execute()
}
