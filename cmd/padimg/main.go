package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/gopadx/pkg/dotfont"
	"github.com/saylorsolutions/gopadx/pkg/pad"
	"github.com/saylorsolutions/gopadx/pkg/pbm"
	"github.com/saylorsolutions/gopadx/pkg/raster"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		helpFlag bool
		showFlag bool
		padFile  string
		fontFile string
		outFile  string
		hintFile string
		offset   int
	)
	flags := flag.NewFlagSet("padimg", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&showFlag, "show", "v", false, "Prints the screened buffer to stdout before writing the bitmap.")
	flags.StringVarP(&padFile, "pad", "p", "", "Pad file holding the shared bit sequence. Required.")
	flags.StringVarP(&fontFile, "font", "f", "", "Dot-matrix font definition file. Required.")
	flags.StringVarP(&outFile, "out", "o", "", "Output bitmap file. Required.")
	flags.StringVarP(&hintFile, "hint", "H", "", "Optional plain-bitmap image embedded below the message as a plaintext hint.")
	flags.IntVarP(&offset, "offset", "s", 0, "Starting offset into the pad. The same offset is needed to reverse the screen.")
	flags.Usage = func() {
		fmt.Printf(`
padimg encodes a short text message into a one-time-pad cipher image. The message is read from stdin, rasterized with a dot-matrix font, XOR screened against the shared pad, and written out as a plain-text bitmap (%s format) that an external converter can turn into a viewable image.

USAGE:  padimg -p PAD -f FONT -o FILE [flags] < message.txt

The final pad cursor position is printed on success, so a follow-up message can continue on the same pad with --offset.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
The pixel screen is a toy demonstration of one-time-pad XOR. Anyone holding the pad, or a single known plaintext, recovers everything.
`, pbm.Marker, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	for _, required := range []struct{ name, val string }{
		{"pad", padFile},
		{"font", fontFile},
		{"out", outFile},
	} {
		if required.val == "" {
			fatal("Missing required --%s flag", required.name)
		}
	}

	font, err := loadFont(fontFile)
	if err != nil {
		fatal("Failed to load font: %v", err)
	}
	bits, err := loadPad(padFile)
	if err != nil {
		fatal("Failed to load pad: %v", err)
	}
	var hint *pbm.Bitmap
	if hintFile != "" {
		hint, err = loadHint(hintFile)
		if err != nil {
			fatal("Failed to load hint: %v", err)
		}
	}
	message, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("Failed to read message from stdin: %v", err)
	}

	buf, err := raster.Rasterize(string(message), font)
	if err != nil {
		fatal("Failed to rasterize message: %v", err)
	}
	cursor, err := raster.Screen(buf, bits, offset)
	if err != nil {
		fatal("Failed to screen message: %v", err)
	}
	if showFlag {
		if err := raster.Fprint(os.Stdout, buf); err != nil {
			fatal("Failed to print buffer: %v", err)
		}
	}
	img, err := raster.Render(buf, hint)
	if err != nil {
		fatal("Failed to render bitmap: %v", err)
	}

	// Render fully in memory first so a failure never leaves a partial file.
	var encoded bytes.Buffer
	if err := img.Encode(&encoded); err != nil {
		fatal("Failed to encode bitmap: %v", err)
	}
	if err := os.WriteFile(outFile, encoded.Bytes(), 0644); err != nil {
		fatal("Failed to write %s: %v", outFile, err)
	}
	echo("Wrote %dx%d bitmap to %s, pad cursor ended at %d", img.Width(), img.Height(), outFile, cursor)
}

func loadFont(path string) (*dotfont.Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return dotfont.Parse(f)
}

func loadPad(path string) (pad.Pad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return pad.Parse(f)
}

func loadHint(path string) (*pbm.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return pbm.Decode(f)
}

func fatal(msg string, args ...any) {
	echo(msg, args...)
	os.Exit(1)
}

func echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Printf(msg, args...)
}
