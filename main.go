package main

import "github.com/agentic-research/axdump/cmd"

func main() {
	cmd.Execute()
}
