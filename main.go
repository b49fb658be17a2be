package main

import (
	"os"

	"github.com/yuiseki/sysquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
