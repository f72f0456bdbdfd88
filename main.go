package main

import "github.com/praveen/legalbot/internal/commands"

func main() {
	commands.Execute()
}
