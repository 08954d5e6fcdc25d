// Command regexfsm compiles a pattern given on the command line and then
// reads lines from stdin, reporting whether each one is accepted by the
// pattern. A blank line ends the session.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/coregx/regexfsm"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <pattern>\n", os.Args[0])
		os.Exit(1)
	}

	pattern := os.Args[1]
	re, err := regexfsm.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "regexfsm: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("Pattern: %s\n", pattern)
		fmt.Print("  Input: ")

		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		result := "REJECTED"
		if re.Accepts(line) {
			result = "ACCEPTED"
		}
		fmt.Printf("  Result: %s\n", result)
	}
}
