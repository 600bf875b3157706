package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/toothkit/landmarks/internal/landmarks"
	"github.com/toothkit/landmarks/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input  string `short:"i" long:"in" description:"Landmark JSON file path" required:"true"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Check  bool   `short:"c" long:"check" description:"Only sniff the file, exit 0 if recognized"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	// Same two-phase protocol the host uses: sniff first, then commit to the
	// returned reader.
	read := landmarks.Detect(opts.Input)
	if read == nil {
		log.Error().Str("path", opts.Input).Msg("Not a recognized landmark file")
		os.Exit(1)
	}

	if opts.Check {
		fmt.Println("recognized")
		return
	}

	layers, err := read(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to read landmark file")
	}

	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(layers)
	} else {
		outputData, err = json.MarshalIndent(layers, "", "  ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal layer data")
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
		}
		log.Info().
			Str("path", opts.Output).
			Str("format", opts.Format).
			Int("points", len(layers[0].Points)).
			Msg("Layer written")
	} else {
		fmt.Println(string(outputData))
	}
}
