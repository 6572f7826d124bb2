// Command anno pages files through less with annofilter as the input
// preprocessor, so text defects show up highlighted in the pager.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
	"pkt.systems/anno/internal/report"
)

// The filter writes to less's pipe, never a terminal, so color must be
// forced; less -R passes the raw escapes through.
const lessOpenFilter = "||-annofilter --color on %s"

func pagerArgv(args []string) []string {
	return append([]string{"less", "-R"}, args...)
}

func main() {
	pager, err := exec.LookPath("less")
	if err != nil {
		fmt.Fprintf(os.Stderr, "anno: %v\n", err)
		os.Exit(1)
	}
	if err := os.Setenv("LESSOPEN", lessOpenFilter); err != nil {
		fmt.Fprintf(os.Stderr, "anno: %v\n", err)
		os.Exit(1)
	}
	// Replaces the process image; returns only on failure.
	err = unix.Exec(pager, pagerArgv(os.Args[1:]), os.Environ())
	code := report.ExitCode(err)
	fmt.Fprintf(os.Stderr, "anno: exec less: %v (%d)\n", err, code)
	os.Exit(code)
}
