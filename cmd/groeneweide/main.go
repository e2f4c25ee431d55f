package main

import "Groeneweide-Backend/cmd/commands"

func main() {
	commands.Execute()
}
