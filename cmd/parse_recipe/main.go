// Command parse_recipe extracts a recipe from a URL and prints it as JSON.
//
//	parse_recipe [-timeout 15s] [-html page.html] <url>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pageza/mealrank/backend/internal/logging"
	"github.com/pageza/mealrank/backend/internal/recipeparser"
)

func main() {
	timeout := flag.Duration("timeout", recipeparser.DefaultTimeout, "Fetch timeout")
	htmlFile := flag.String("html", "", "Parse this local HTML file instead of fetching the URL")
	verbose := flag.Bool("v", false, "Log extraction steps")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: parse_recipe [-timeout 15s] [-html page.html] [-v] <url>")
		os.Exit(2)
	}
	url := flag.Arg(0)

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger := logging.Must(level, false)
	defer func() { _ = logger.Sync() }()

	parser := recipeparser.New(recipeparser.WithTimeout(*timeout), recipeparser.WithLogger(logger))

	var (
		recipe *recipeparser.ParsedRecipe
		err    error
	)
	if *htmlFile != "" {
		body, readErr := os.ReadFile(*htmlFile)
		if readErr != nil {
			fmt.Fprintln(os.Stderr, readErr)
			os.Exit(1)
		}
		recipe, err = parser.ParseHTML(url, body)
	} else {
		recipe, err = parser.Parse(context.Background(), url)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipe); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
