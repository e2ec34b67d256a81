package main

import "blogify/cmd/cli/command"

func main() {
	command.Execute()
}
