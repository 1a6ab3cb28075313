package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	social "github.com/goliatone/go-cms-social"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("preview: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "Path to a YAML configuration file")
		filePath   = fs.String("file", "", "Content file to process (reads stdin when empty or -)")
		site       = fs.String("site", "", "Site screen name, overrides the configuration")
		wordpress  = fs.Bool("wordpress", false, "Accept WordPress style [shortcode] syntax")
		card       = fs.String("card", "", "Card values as a JSON object, rendered as meta tags")
		widgets    = fs.Bool("widgets", false, "Print the widget meta tags")
		verbose    = fs.Bool("verbose", false, "Log shortcode diagnostics to stdout")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := social.DefaultConfig()
	if *configPath != "" {
		loaded, err := social.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *site != "" {
		cfg.Site.ScreenName = *site
	}
	if *wordpress {
		cfg.Shortcodes.EnableWordPress = true
	}
	if *verbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Provider = "console"
		cfg.Logging.Level = "debug"
	}

	module, err := social.New(cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	if *card != "" {
		values := map[string]any{}
		if err := json.Unmarshal([]byte(*card), &values); err != nil {
			return fmt.Errorf("decode card: %w", err)
		}
		fmt.Fprintf(stdout, "%s\n", module.CardMetaFromValues(values))
	}
	if *widgets {
		fmt.Fprintf(stdout, "%s\n", module.WidgetsMeta())
	}
	if *card != "" || *widgets {
		if *filePath == "" {
			return nil
		}
	}

	content, err := readContent(*filePath, stdin)
	if err != nil {
		return err
	}
	out, err := module.Process(ctx, content)
	if err != nil {
		return fmt.Errorf("process content: %w", err)
	}
	fmt.Fprintln(stdout, strings.TrimRight(out, "\n"))
	return nil
}

func readContent(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
