package main

import (
	"os"

	"github.com/pasfmt/pasfmt/cli"
)

func main() {
	os.Exit(cli.Execute())
}
