package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"freight-quote-service/internal/refdata"
	"freight-quote-service/internal/services"
)

// Reads a freight request from stdin and prints the analysis as JSON.
// Useful for inspecting extraction behavior without running the server:
//
//	cat request.txt | analyze
func main() {
	tablesPath := flag.String("tables", "", "path to a reference tables JSON file (defaults to built-ins)")
	flag.Parse()

	tables, err := refdata.Load(*tablesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: read stdin: %v\n", err)
		os.Exit(1)
	}

	result := services.AnalyzeText(string(text), tables.Trailers)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
