/*
 * Copyright (c) 2025, Kyle Brown <kylebrw@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package check

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kylebrw/slang/pkg/output"
	"github.com/kylebrw/slang/pkg/ruleio"
	"github.com/kylebrw/slang/pkg/rules"
)

var (
	Command = &cobra.Command{
		Use:   "check [macro files]",
		Short: "Compile macro definition files and list the resulting rules",
		Args:  cobra.MinimumNArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)
			format := viper.GetString("slang.format")
			if len(filterStringSlice([]string{"csv", "text", "json"}, format)) != 1 {
				log.Fatal().Msg("unsupported output format")
			}

			ruleSet, err := ruleio.LoadRuleSet(args)
			if err != nil {
				log.Fatal().Err(err).Msg("macro files did not compile")
			}

			fmt.Printf("ruleset %s: %d rules\n", ruleSet.ID, len(ruleSet.Rules))
			writer := output.NewOutputWriter(os.Stdout, format)
			writer.Write(newListing(ruleSet))
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("format", "f", "text", "Output format of the rule listing [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("slang.format", Command.Flags().Lookup("format"))
}

type listing struct {
	ID    string    `json:"id"`
	Rules []ruleRow `json:"rules"`
}

type ruleRow struct {
	Pattern  string `json:"pattern"`
	Template string `json:"template"`
	Captures string `json:"captures"`
}

func newListing(rs *rules.RuleSet) listing {
	l := listing{ID: rs.ID.String()}
	for _, r := range rs.Rules {
		names := make([]string, 0, len(r.Captures))
		for name, capture := range r.Captures {
			names = append(names, fmt.Sprintf("$%s (%s)", name, capture.Kind))
		}
		sort.Strings(names)

		l.Rules = append(l.Rules, ruleRow{
			Pattern:  r.String(),
			Template: strings.ReplaceAll(r.TemplateString(), "\n", "\\n"),
			Captures: strings.Join(names, ", "),
		})
	}
	return l
}

func (l listing) Headers() []string {
	return []string{"#", "Pattern", "Template", "Captures"}
}

func (l listing) Values() [][]string {
	rows := make([][]string, 0, len(l.Rules))
	for i, r := range l.Rules {
		rows = append(rows, []string{strconv.Itoa(i + 1), r.Pattern, r.Template, r.Captures})
	}
	return rows
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}
