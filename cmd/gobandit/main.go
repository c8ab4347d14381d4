// Command gobandit runs contextual bandit experiments described by
// JSON configuration files.
package main

import (
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
