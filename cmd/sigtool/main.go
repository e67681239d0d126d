// Command sigtool is a thin CLI exercising the declaration environment
// end to end: load a small fixture under a configured root namespace,
// validate type-parameter compatibility, normalize every class/module
// alias when the config sets eager_memo, run a resolution pass with a
// lexical-scope-walking resolver, and print a summary of the result.
package main

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"

	"github.com/aki19035vc/rbs/common"
	"github.com/aki19035vc/rbs/config"
	"github.com/aki19035vc/rbs/env"
	"github.com/aki19035vc/rbs/loader"
	"github.com/aki19035vc/rbs/logging"
	"github.com/aki19035vc/rbs/resolve"
	"github.com/aki19035vc/rbs/typing"
	"github.com/aki19035vc/rbs/util"
)

func main() {
	cli := olive.NewCLI("sigtool", "sigtool exercises the declaration environment end to end", true)

	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the trace log level", false,
		[]string{"silent", "error", "warning", "verbose"})
	logLvlArg.SetDefaultValue("silent")

	checkCmd := cli.AddSubcommand("check", "load, validate, normalize, and resolve a fixture", true)
	checkCmd.AddPrimaryArg("config-path", "the path to the project config file", true)

	cli.AddSubcommand("version", "print the sigtool version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		runCheck(subResult, result.Arguments["loglevel"].(string))
	case "version":
		fmt.Println("sigtool version", common.Version)
	default:
		fmt.Fprintln(os.Stderr, "no subcommand given; try `sigtool check <config-path>` or `sigtool version`")
		os.Exit(1)
	}
}

func runCheck(result *olive.ArgParseResult, loglevelName string) {
	configPath, _ := result.PrimaryArg()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if loglevelName != "" {
		level = logging.ParseLevel(loglevelName)
	}
	logger := logging.New(level)

	e, err := env.FromLoader(loader.NewStatic(demoDecls(cfg.RootNamespace)...))
	if err != nil {
		fmt.Fprintln(os.Stderr, "load failed:", err)
		os.Exit(1)
	}
	e.Logger = logger

	if err := e.ValidateTypeParams(); err != nil {
		fmt.Fprintln(os.Stderr, "validation failed:", err)
		os.Exit(1)
	}

	aliasNames := e.AliasNames()
	if cfg.EagerMemo {
		for _, n := range aliasNames {
			if _, _, err := e.NormalizeModuleName(n); err != nil {
				fmt.Fprintln(os.Stderr, "normalization failed:", err)
				os.Exit(1)
			}
		}

		reprs := util.Map(aliasNames, func(n typing.TypeName) string { return n.String() })
		fmt.Println("normalized aliases:", reprs)
	}

	resolved, err := resolve.ResolveTypeNames(e, &resolve.ContextualResolver{Env: e}, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolution failed:", err)
		os.Exit(1)
	}

	sizes := resolved.Inspect()
	fmt.Printf("classes/modules: %d  interfaces: %d  type aliases: %d  constants: %d  class aliases: %d  globals: %d\n",
		sizes.Classes, sizes.Interfaces, sizes.TypeAliases, sizes.Constants, sizes.ClassAliases, sizes.Globals)
}
