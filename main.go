package main

import (
	"github.com/shivendra100/devops-jokes-dispenser/internal/cli"
)

func main() {
	cli.Execute()
}
