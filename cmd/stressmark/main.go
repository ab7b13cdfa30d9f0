package main

import (
	"github.com/ArubikU/stressmark/cmd/stressmark/cmd"
)

func main() {
	cmd.Execute()
}
