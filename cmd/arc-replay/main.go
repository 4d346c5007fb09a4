// Command arc-replay scores a captured review file offline.
// It accepts the journal's NDJSON as well as plain JSON arrays and
// {"data": [...]} wrappers, so captures can be replayed without the API
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"arc/internal/adapters/journal"
	"arc/internal/adapters/model"
	"arc/internal/core/canon"
	"arc/internal/core/scoring"
	"arc/internal/platform/config"
	"arc/internal/platform/logger"
)

func main() {
	var (
		input   = flag.String("input", "", "path to a captured review file (ndjson, array, or data wrapper)")
		asJSON  = flag.Bool("json", false, "emit results as a JSON array instead of text")
		showWhy = flag.Bool("reasons", false, "print per-review reasons in text mode")
	)
	flag.Parse()

	path := *input
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: arc-replay [-json] [-reasons] <file>")
		os.Exit(2)
	}

	logger.Init(logger.FromEnv())

	raws, err := journal.ReadAll(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}
	if len(raws) == 0 {
		fmt.Fprintln(os.Stderr, "no reviews in input")
		os.Exit(1)
	}

	ctx := context.Background()
	batch := canon.New().NormalizeBatch(raws)

	texts := make([]string, len(batch))
	for i, r := range batch {
		texts[i] = canon.Text(r)
	}

	mdl := model.FromConf(config.New().Prefix("ARC_"))
	results := scoring.ComposeBatch(batch, mdl.Probabilities(ctx, texts))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printText(batch, results, *showWhy)
}

func printText(batch []canon.Review, results []scoring.Result, showWhy bool) {
	sum := 0
	byLabel := map[string]int{}

	for i, res := range results {
		name := batch[i].AuthorName
		key := res.Key
		if key == "" {
			key = fmt.Sprintf("#%d", i+1)
		}
		fmt.Printf("%-12s %3d  %-16s %s\n", key, res.Total, res.Label, name)
		if showWhy {
			for _, reason := range res.Reasons {
				fmt.Printf("             %s %s\n", reason.Icon, reason.Text)
			}
		}
		sum += res.Total
		byLabel[res.Label]++
	}

	labels := make([]string, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	fmt.Printf("\n%d reviews, average score %d\n", len(results), sum/len(results))
	for _, l := range labels {
		fmt.Printf("  %-16s %d\n", l, byLabel[l])
	}
}
