package main

import (
	"fmt"
	"os"

	"adsd/internal/adsctl"
)

func main() {
	if err := adsctl.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
