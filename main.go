package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle-term/internal/cli"
)

func main() {
	_ = godotenv.Load()
	os.Exit(cli.Execute())
}
