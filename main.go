package main

import (
	"encoding/hex"
	. "fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
	"github.com/xzray/xzalgochain/xc320"
)

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// xzsum: command-line digesting utility over the xc320 streaming API. It
// hashes stdin, files, or -i strings, and verifies digests in -c check mode.

const bufferSize = 16384

var (
	quiet   bool
	verbose bool
)

func main() {
	pHelp := pflag.BoolP("help", "h", false, "prints this help menu")
	pString := pflag.StringP("string", "i", "", "hashes the exact bytes of STRING instead of a file")
	pCheck := pflag.StringP("check", "c", "", "verifies the input against an 80-hex-digit HASH")
	pForce := pflag.BoolP("force-scalar", "f", false, "disables the vector kernel")
	pQuiet := pflag.BoolP("quiet", "q", false, "prints only digests or breaking errors")
	pVersion := pflag.BoolP("version", "v", false, "prints version and platform details")
	pVerbose := pflag.BoolP("verbose", "V", false, "prints progress to stderr")

	pflag.CommandLine.SortFlags = false
	pflag.Parse()
	quiet, verbose = *pQuiet, *pVerbose

	if *pForce {
		xc320.ForceScalar(true)
	}

	switch {
	case *pHelp:
		printHelp()
		os.Exit(0)
	case *pVersion:
		printVersion()
		os.Exit(0)
	}

	var (
		sum   []byte
		label string
		err   error
	)
	switch path := pflag.Arg(0); {
	case pflag.CommandLine.Changed("string"):
		label = `"` + *pString + `"`
		sum, err = hashStream(strings.NewReader(*pString), label)
	case path == "" || path == "-":
		label = "stdin"
		sum, err = hashStream(os.Stdin, label)
	default:
		label = vainpath.Simplify(path)
		var f *os.File
		if f, err = os.Open(path); err == nil {
			sum, err = hashStream(f, label)
			f.Close()
		}
	}
	if err != nil {
		Fprintf(os.Stderr, "xzsum: %s: %v\n", label, err)
		os.Exit(1)
	}

	if pflag.CommandLine.Changed("check") {
		os.Exit(check(sum, *pCheck, label))
	}

	if label == "stdin" {
		Println(hex.EncodeToString(sum))
	} else {
		Println(hex.EncodeToString(sum) + "  " + label)
	}
}

// hashStream digests r with the streaming API in bufferSize reads.
func hashStream(r io.Reader, label string) ([]byte, error) {
	d := xc320.New()
	buf := make([]byte, bufferSize)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = d.Write(buf[:n])
			total += int64(n)
			if verbose && !quiet {
				Fprintf(os.Stderr, "Read %d bytes from %s\r", total, label)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			d.Wipe()
			return nil, err
		}
	}
	if verbose && !quiet {
		Fprintln(os.Stderr)
	}
	sum := d.Final()
	return sum[:], nil
}

// check compares sum against an 80-hex-digit reference; the exit code is the
// contract (0 match, 1 mismatch or malformed reference).
func check(sum []byte, ref, label string) int {
	want, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(ref)))
	if err != nil || len(want) != xc320.Size {
		if !quiet {
			Fprintln(os.Stderr, "xzsum: -c requires an 80-hex-digit hash")
		}
		return 1
	}
	if xc320.Equal(sum, want) {
		if !quiet {
			Println(label + ": OK")
		}
		return 0
	}
	if !quiet {
		Println(label + ": MISMATCH")
		Println("computed: " + hex.EncodeToString(sum))
		Println("expected: " + hex.EncodeToString(want))
	}
	return 1
}

func printVersion() {
	Println(xc320.Version())
	Println("Platform:", runtime.GOOS+"/"+runtime.GOARCH)
	Println("CPU:", cpuid.CPU.BrandName)
	Println("AVX2 Support:", yes(cpuid.CPU.Supports(cpuid.AVX2)))
	Println("Accelerated Path:", xc320.Accel())
	Println("Force Scalar:", yes(xc320.ForcedScalar()))
}

func yes(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func printHelp() {
	Println(xc320.Version() + " digest utility\n\n" +
		"Usage:\n" +
		"  xzsum [-f] [-q|-V] [-c HASH] [FILE|-|-i STRING]\n\n" +
		"Modes:\n" +
		"  xzsum                reads from standard input\n" +
		"  xzsum file.txt       streams the file's contents\n" +
		"  xzsum -i \"text\"      hashes the exact bytes of the string\n" +
		"  xzsum -c HASH FILE   verifies FILE against HASH; exits 0 on match\n\n" +
		"Options:")
	pflag.PrintDefaults()
	Println("\n`echo` without -n appends a newline, which changes the hashed\n" +
		"bytes and therefore the digest; the utility never modifies input.")
}
