// cmd/relay/main.go
package main

import (
	"fmt"
	"os"

	"github.com/relay-run/relay/cmd/relay/commands"
)

func main() {
	if err := commands.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
