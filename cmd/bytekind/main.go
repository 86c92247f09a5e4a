// Command bytekind re-encodes a single byte value between formats and codecs.
//
//	echo '[1,2,3,4]' | bytekind --from plain --to hex --codec json
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/bytekind/formats"
	"github.com/iotaledger/bytekind/internal/convert"
	"github.com/iotaledger/bytekind/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flagSet := flag.NewFlagSet("bytekind", flag.ContinueOnError)
	flagSet.SortFlags = false

	var opts convert.Options
	flagSet.StringVar(&opts.From, "from", "plain", "input format ("+strings.Join(formats.Names(), ", ")+")")
	flagSet.StringVar(&opts.To, "to", "hex", "output format")
	flagSet.StringVar(&opts.Codec, "codec", "json", "input codec ("+strings.Join(convert.CodecNames(), ", ")+")")
	flagSet.StringVar(&opts.OutCodec, "out-codec", "", "output codec (defaults to --codec)")
	flagSet.IntVar(&opts.Length, "length", 0, "exact number of bytes the input must hold (0 accepts any length)")
	inPath := flagSet.String("in", "", "file to read the value from (defaults to stdin)")
	verbose := flagSet.BoolP("verbose", "v", false, "log decoding steps to stderr")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg := logger.DefaultCfg
	if *verbose {
		cfg = logger.VerboseCfg
	}
	log, err := logger.NewRootLogger(cfg)
	if err != nil {
		return err
	}
	//nolint:errcheck // syncing stderr fails on some platforms
	defer log.Sync()

	in := stdin
	if *inPath != "" {
		file, err := os.Open(*inPath)
		if err != nil {
			return err
		}
		defer file.Close()

		in = file
	}

	return convert.Run(opts, in, stdout, log)
}
