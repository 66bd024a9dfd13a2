package main

import (
	"github.com/notargets/meshgeom/cmd"
)

func main() {
	cmd.Execute()
}
