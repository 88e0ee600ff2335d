// Command notekeep inspects the notekeep appearance layer.
package main

import (
	"os"

	"github.com/notekeep/notekeep/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
