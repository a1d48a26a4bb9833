package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/journalbridge/internal/commands"
	"github.com/gerunddev/journalbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "encode":
		commands.Encode(os.Args[2:])
	case "decode":
		commands.Decode(os.Args[2:])
	case "roundtrip", "rt":
		commands.RoundTrip(os.Args[2:])
	case "html":
		commands.HTML(os.Args[2:])
	case "save":
		commands.Save(os.Args[2:])
	case "show":
		commands.Show(os.Args[2:])
	case "latest":
		commands.Latest(os.Args[2:])
	case "status":
		commands.Status()
	case "version", "-v", "--version":
		fmt.Printf("journalbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`journalbridge - Store journal entries as markdown or Notion-style blocks

Usage:
  journalbridge <command> [options]

Commands:
  encode      Print the blocks of a markdown file (--format json|yaml, --images)
  decode      Print the markdown of a block file (.json, .yaml)
  roundtrip   Show what a markdown file loses when encoded and decoded (--plain)
  html        Render a markdown file as HTML (--sanitize)
  save        Save a markdown file as a journal entry (--date YYYY-MM-DD)
  show        Print a journal entry (--date YYYY-MM-DD, --render)
  latest      Print the most recent journal entry (--render)
  status      Display storage configuration and the last save
  version     Show version information
  help        Show this help message

Examples:
  journalbridge encode today.md --format yaml
  journalbridge decode 2026-10-16.json
  journalbridge roundtrip today.md
  journalbridge save today.md
  journalbridge show --date 2026-10-15 --render
  journalbridge latest

Configuration:
  Config file: %s
  State file:  %s
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}
