// Command derive is a small demonstration CLI: load a dhātupāṭha CSV,
// build the bounded grammar rule set, derive surface forms for a
// dhātu/vibhakti pair, and print them.
//
//	go run ./cmd/derive -dhatupatha data/dhatupatha.csv -dhatu BU -vibhakti tip
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/hareeshbabu82ns/vyakarana/derive"
	"github.com/hareeshbabu82ns/vyakarana/dhatupatha"
	"github.com/hareeshbabu82ns/vyakarana/grammar"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
	"github.com/k0kubun/pp"
)

const defaultDhatupatha = "data/dhatupatha.csv"

func main() {
	dhatupathaPath := flag.String("dhatupatha", defaultDhatupatha, "path to the dhatupatha CSV")
	dhatuRaw := flag.String("dhatu", "", "raw dhatu upadesha, e.g. BU or qukf\\Y")
	vibhaktiRaw := flag.String("vibhakti", "tip", "raw tin-ending upadesha, e.g. tip")
	verbose := flag.Bool("v", false, "dump the parsed upadeshas before deriving")
	flag.Parse()

	if *dhatuRaw == "" {
		fmt.Fprintln(os.Stderr, "Usage: derive -dhatu <raw> [-vibhakti <raw>] [-dhatupatha <file>]")
		os.Exit(1)
	}

	if err := run(*dhatupathaPath, *dhatuRaw, *vibhaktiRaw, *verbose); err != nil {
		color.Redln("derive:", err)
		os.Exit(1)
	}
}

func run(dhatupathaPath, dhatuRaw, vibhaktiRaw string, verbose bool) error {
	dp, err := dhatupatha.Load(dhatupathaPath)
	if err != nil {
		return fmt.Errorf("load dhatupatha: %w", err)
	}

	dhatu, err := grammar.Dhatu(dhatuRaw)
	if err != nil {
		return fmt.Errorf("parse dhatu %q: %w", dhatuRaw, err)
	}
	tin, err := grammar.Vibhakti(vibhaktiRaw)
	if err != nil {
		return fmt.Errorf("parse vibhakti %q: %w", vibhaktiRaw, err)
	}

	if verbose {
		pp.Println(dhatu)
		pp.Println(tin)
	}

	forms, err := derive.Derive(dp, grammar.DefaultGanaBoundaries, []*upadesha.Upadesha{dhatu, tin}, derive.Options{})
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}

	if len(forms) == 0 {
		color.Redln("no forms derived")
		return nil
	}
	color.Greenln("derived forms:")
	for _, f := range forms {
		fmt.Println(" ", f)
	}
	return nil
}
