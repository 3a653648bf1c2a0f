package main

import (
	"dragchess/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunDragChess(); err != nil {
		fmt.Fprintf(os.Stderr, "dragchess: %v\n", err)
		os.Exit(1)
	}
}
