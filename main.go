package main

import (
	"os"

	"github.com/scanforge/scanforge/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
