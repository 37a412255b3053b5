/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package expand

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	engine "github.com/kylebrw/slang/pkg/expand"
	"github.com/kylebrw/slang/pkg/ruleio"
	"github.com/kylebrw/slang/pkg/scanner"
)

var (
	Command = &cobra.Command{
		Use:   "expand [macro files]",
		Short: "Macro expand input through one or more macro definition files",
		Args:  cobra.MinimumNArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			ruleSet, err := ruleio.LoadRuleSet(args)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to compile macro files")
			}
			log.Debug().Str("ruleset", ruleSet.ID.String()).Int("rules", len(ruleSet.Rules)).Msg("compiled macro files")

			input, err := readInput(viper.GetString("slang.input"))
			if err != nil {
				log.Fatal().Err(err).Msg("unable to read input")
			}
			tokens := scanner.Tokenize(input)

			metrics := engine.NewMetricsStore()
			driver := engine.NewDriver(
				ruleSet,
				engine.WithLogger(log),
				engine.WithMetrics(metrics),
				engine.WithLimits(viper.GetInt("slang.max-depth"), viper.GetInt("slang.max-rewrites")),
			)

			expanded, err := driver.Run(tokens)
			if err != nil {
				log.Fatal().Err(err).Msg("expansion failed")
			}

			if err := writeOutput(viper.GetString("slang.output-file"), scanner.Serialize(expanded)); err != nil {
				log.Fatal().Err(err).Msg("unable to write output")
			}

			if viper.GetBool("slang.stats") {
				printStats(metrics, driver, len(tokens), len(expanded))
			}
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("input", "i", "", "The input file to macro expand (default stdin)")
	Command.Flags().StringP("output", "o", "", "The file to write the macro expanded input to (default stdout)")
	Command.Flags().Bool("stats", false, "Print expansion counters to stderr when the run completes")

	// Bind flags to viper
	viper.BindPFlag("slang.input", Command.Flags().Lookup("input"))
	viper.BindPFlag("slang.output-file", Command.Flags().Lookup("output"))
	viper.BindPFlag("slang.stats", Command.Flags().Lookup("stats"))
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "unable to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read input file %s", path)
	}
	return string(data), nil
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return errors.Wrapf(os.WriteFile(path, []byte(text), 0644), "unable to write output file %s", path)
}

func printStats(metrics engine.MetricsStore, driver *engine.Driver, in, out int) {
	fmt.Fprintf(os.Stderr, "tokens in:  %s\n", humanize.Comma(int64(in)))
	fmt.Fprintf(os.Stderr, "tokens out: %s\n", humanize.Comma(int64(out)))
	fmt.Fprintf(os.Stderr, "rewrites:   %s\n", humanize.Comma(int64(driver.Rewrites())))

	families, err := metrics.Registry().Gather()
	if err != nil {
		return
	}
	for _, mf := range families {
		if mf.GetName() != "slang_rewrites" {
			continue
		}
		for _, m := range mf.GetMetric() {
			if len(m.GetLabel()) == 0 {
				continue
			}
			count := humanize.Comma(int64(m.GetCounter().GetValue()))
			fmt.Fprintf(os.Stderr, "  %s x '%s'\n", count, m.GetLabel()[0].GetValue())
		}
	}
}
