// Command noid normalizes a JSON-LD document from a file or stdin.
//
// The document is expanded with a JSON-LD 1.1 processor, value objects
// are unwrapped into plain scalars, and the result is written to stdout
// as JSON keyed by context-abbreviated terms.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/c360/noid/config"
	"github.com/c360/noid/registry"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration (optional)")
	inPath := flag.String("in", "-", "Input JSON-LD document ('-' for stdin)")
	indent := flag.String("indent", "  ", "Output indentation")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *configPath, err)
		}
		cfg = loaded
	}

	data, err := readInput(*inPath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	_, parser, _ := cfg.Build(registry.New())

	result, err := parser.FromJSONLD(data)
	if err != nil {
		log.Fatalf("Failed to parse document: %v", err)
	}

	out, err := json.MarshalIndent(result, "", *indent)
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path) // #nosec G304 -- path is operator-supplied input
}
