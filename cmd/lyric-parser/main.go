package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sukalov/lyricsync/internal/lyrics/parsers/lrc"
)

func main() {
	var translatedFile string
	var romanizedFile string
	var dynamicFile string
	var outputFile string

	flag.StringVar(&translatedFile, "translated", "", "Translated track file")
	flag.StringVar(&romanizedFile, "romanized", "", "Romanized track file")
	flag.StringVar(&dynamicFile, "dynamic", "", "Word-level (karaoke) track file")
	flag.StringVar(&outputFile, "output", "parsed_lyric.json", "Output file name")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <original track file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "Example: %s -translated song.cn.lrc -dynamic song.qrc song.lrc\n", os.Args[0])
		os.Exit(1)
	}

	original := mustReadFile(args[0])
	translated := readOptionalFile(translatedFile)
	romanized := readOptionalFile(romanizedFile)
	dynamic := readOptionalFile(dynamicFile)

	lines := lrc.Parse(original, translated, romanized, dynamic)

	linesJSON, err := json.MarshalIndent(lines, "", "    ")
	if err != nil {
		log.Fatalf("Error encoding lines: %v", err)
	}

	if err := os.WriteFile(outputFile, linesJSON, 0644); err != nil {
		log.Fatalf("Error saving file: %v", err)
	}

	fmt.Printf("Parsed %d lines to: %s\n", len(lines), outputFile)
}

func mustReadFile(name string) string {
	data, err := os.ReadFile(name)
	if err != nil {
		log.Fatalf("Error reading %s: %v", name, err)
	}
	return string(data)
}

func readOptionalFile(name string) string {
	if name == "" {
		return ""
	}
	return mustReadFile(name)
}
