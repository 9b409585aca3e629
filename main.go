package main

import (
	"github.com/tomoris/markovwriter/cmd"
)

func main() {
	cmd.Execute()
}
