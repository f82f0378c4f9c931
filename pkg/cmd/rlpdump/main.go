// Command rlpdump decodes an RLP-encoded hex string and prints its
// structure: a debug-formatted tree of data items and nested lists.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"

	"github.com/eth2030/rlp/pkg/rlp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("rlpdump", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "also log a structured warning for malformed input")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	setupLogging(*verbose)

	var input string
	if fs.NArg() > 0 {
		input = fs.Arg(0)
	} else {
		raw, err := io.ReadAll(bufio.NewReader(stdin))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
			return 1
		}
		input = string(raw)
	}

	data, err := decodeHex(input)
	if err != nil {
		log.Warn("rlpdump: malformed hex input", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	v := rlp.NewView(data)
	fmt.Fprintln(stdout, v.String())
	return 0
}

// decodeHex accepts hex with or without a leading "0x" and with or without
// internal whitespace.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	s = strings.Join(strings.Fields(s), "")
	return hex.DecodeString(s)
}

func setupLogging(verbose bool) {
	lvl := slog.LevelError
	if verbose {
		lvl = slog.LevelWarn
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, true)))
}
