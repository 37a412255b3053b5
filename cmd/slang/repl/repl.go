/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kylebrw/slang/pkg/common/parse"
	engine "github.com/kylebrw/slang/pkg/expand"
	"github.com/kylebrw/slang/pkg/ruleio"
	"github.com/kylebrw/slang/pkg/rules"
	"github.com/kylebrw/slang/pkg/scanner"
)

var log zerolog.Logger

var (
	Command = &cobra.Command{
		Use:   "repl [macro files]",
		Short: "Interactive prompt that macro expands each line you type",
		Args:  cobra.MinimumNArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			ruleSet, err := ruleio.LoadRuleSet(args)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to compile macro files")
			}

			readlinePrompt(ruleSet)
		},
	}
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Caller().
		Logger()
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func listRules(rs *rules.RuleSet) func(string) []string {
	return func(line string) []string {
		options := []string{}
		for _, r := range rs.Rules {
			options = append(options, r.String())
		}
		return options
	}
}

func readlinePrompt(rs *rules.RuleSet) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("rules", readline.PcItemDynamic(listRules(rs))),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	driver := engine.NewDriver(
		rs,
		engine.WithLimits(viper.GetInt("slang.max-depth"), viper.GetInt("slang.max-rewrites")),
	)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if strings.ToUpper(line) == "HELP" {
			fmt.Println("usage:")
			fmt.Println(completer.Tree("    "))
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}
		if strings.ToUpper(line) == "RULES" {
			for _, r := range rs.Rules {
				fmt.Printf("%s -> %s\n", r, strings.ReplaceAll(r.TemplateString(), "\n", "\\n"))
			}
			continue
		}

		expanded, err := driver.Run(scanner.Tokenize(line + "\n"))
		if err != nil {
			if ee, ok := err.(*engine.ExpansionError); ok {
				se := parse.SyntaxError{
					Location: parse.Location{Start: ee.Position, End: ee.Position},
					Message:  err.Error(),
				}
				fmt.Print(se.FormatError(line))
			} else {
				log.Error().Err(err).Send()
			}
			continue
		}

		fmt.Print(scanner.Serialize(expanded))
	}
}
