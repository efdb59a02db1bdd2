package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/saylorsolutions/gopadx/pkg/pad"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		helpFlag   bool
		offsetFlag bool
		bits       int
		outFile    string
		passphrase string
		saltHex    string
	)
	flags := flag.NewFlagSet("padgen", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&offsetFlag, "offset", "s", false, "Also prints a random starting offset to use with padimg --offset.")
	flags.IntVarP(&bits, "bits", "n", 4096, "Number of pad bits to generate.")
	flags.StringVarP(&outFile, "out", "o", "", "Output pad file. Writes to stdout when omitted.")
	flags.StringVarP(&passphrase, "passphrase", "P", "", "Derive the pad from this passphrase instead of random generation.")
	flags.StringVar(&saltHex, "salt", "", "Hex-encoded salt for passphrase derivation. Both sides must use the same salt.")
	flags.Usage = func() {
		fmt.Printf(`
padgen produces a pad file for use with padimg. By default the bits come from the OS entropy pool. With a passphrase (and optionally a salt), the pad is derived deterministically instead, so two parties sharing the passphrase and salt can generate identical pads without exchanging a file.

USAGE:  padgen [flags]

FLAGS:
%s
SECURITY:
    The pad is the whole secret. A short pad repeats over long messages, and a guessable passphrase makes the derived pad guessable too. Neither makes this scheme encryption; see padimg for the full disclaimer.
`, flags.FlagUsages())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}

	var (
		bitSeq pad.Pad
		offset = -1
		err    error
	)
	switch {
	case passphrase != "":
		var salt []byte
		if saltHex != "" {
			salt, err = hex.DecodeString(saltHex)
			if err != nil {
				fatal("Failed to decode salt, must be a hex string with only the characters a-f, A-F, or 0-9")
			}
		}
		bitSeq, err = pad.FromPassphrase([]byte(passphrase), salt, bits)
	case offsetFlag:
		bitSeq, offset, err = pad.GenerateOffset(bits)
	default:
		bitSeq, err = pad.Generate(bits)
	}
	if err != nil {
		fatal("Failed to generate pad: %v", err)
	}

	var encoded bytes.Buffer
	if err := pad.Encode(&encoded, bitSeq); err != nil {
		fatal("Failed to encode pad: %v", err)
	}
	if outFile == "" {
		if _, err := os.Stdout.Write(encoded.Bytes()); err != nil {
			fatal("Failed to write pad: %v", err)
		}
	} else if err := os.WriteFile(outFile, encoded.Bytes(), 0600); err != nil {
		fatal("Failed to write %s: %v", outFile, err)
	}
	if offset >= 0 {
		echo("Suggested starting offset: %d", offset)
	}
}

func fatal(msg string, args ...any) {
	echo(msg, args...)
	os.Exit(1)
}

func echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
