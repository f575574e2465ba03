// Package cli provides print helpers for command line tools.
package cli

import (
	"fmt"
	"time"
)

func Printf(pat string, args ...any) {
	fmt.Printf(pat, args...)
}

func Printlnf(pat string, args ...any) {
	fmt.Printf(pat+"\n", args...)
}

func TPrintlnf(pat string, args ...any) {
	t := time.Now().Format("2006-01-02 15:04:05.000")
	fmt.Printf(t+" "+pat+"\n", args...)
}

func DebugPrintlnf(debug bool, pat string, args ...any) {
	if debug {
		fmt.Printf("[DEBUG] "+pat+"\n", args...)
	}
}
