package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/Sremoyee/Huffman-File-Zipper/zipper"
)

var log = logging.MustGetLogger("zipper/cmd")

const progName = "zipper"
const usageMessageRaw = `
Usage: zipper OPTIONS SUBCOMMAND...

Options:
  --debug, -d
	Log code table details to standard error.

Subcommands:
  compress INPUT OUTPUT
	Compress the file INPUT into the new file OUTPUT, and report the
	original size, compressed size and compression ratio.
  decompress INPUT OUTPUT
	Decompress the file INPUT, which must have been written by
	compress, into the new file OUTPUT.
  table INPUT
	Write the code table that compress would use for INPUT to
	standard output.
`

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

func transformFromArgs(xform func(inPath, outPath string) (*zipper.Report, error)) func() error {
	inPath := nextArg("INPUT")
	outPath := nextArg("OUTPUT")
	endOfArgs()

	return func() error {
		report, err := xform(inPath, outPath)
		if err != nil {
			return err
		}
		_, err = io.WriteString(os.Stdout, report.String())
		return err
	}
}

func tableFromArgs() func() error {
	inPath := nextArg("INPUT")
	endOfArgs()

	return func() error {
		table, err := zipper.TableFor(inPath)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, table)
		return err
	}
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	var requestedCommand func() error
	subcommandArg := nextArg("SUBCOMMAND")
	switch subcommandArg {
	default:
		usageErrorf("unrecognized subcommand \"%s\"", subcommandArg)
	case "compress":
		requestedCommand = transformFromArgs(zipper.CompressFile)
	case "decompress":
		requestedCommand = transformFromArgs(zipper.DecompressFile)
	case "table":
		requestedCommand = tableFromArgs()
	}

	log.Debugf("running %s", subcommandArg)
	if err := requestedCommand(); err != nil {
		exitError(err)
	}
}
