// hrctl estimates resting heart rates from the command line
package main

import (
	"os"

	"github.com/heartmonitor/heartmonitor/api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
