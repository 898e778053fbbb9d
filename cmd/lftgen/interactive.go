package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

func runInteractive(args []string) int {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	build := backendFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lftgen interactive [flags]")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	svc, err := build()
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		return 1
	}

	fmt.Println("Interactive Topology Generator")
	fmt.Println(banner)
	fmt.Println("Describe the network topology you want, or type 'help' or 'quit'.")
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Describe your topology: ")
		if !in.Scan() {
			fmt.Println()
			return 0
		}
		line := strings.TrimSpace(in.Text())
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "quit"), strings.EqualFold(line, "exit"):
			fmt.Println("Goodbye!")
			return 0
		case strings.EqualFold(line, "help"):
			printInteractiveHelp()
			continue
		}

		// Errors are reported per request; the session keeps going.
		art, err := svc.Generate(context.Background(), line)
		if err != nil {
			log.Error().Err(err).Msg("generation failed")
			continue
		}

		fmt.Println()
		fmt.Println("Generated Topology Code:")
		fmt.Println(banner)
		fmt.Println(art.Code)
		fmt.Println(banner)
		if art.Valid {
			fmt.Println("Validation: PASSED")
		} else {
			fmt.Println("Validation: FAILED (code may need manual fixes)")
		}

		if path := promptSave(in); path != "" {
			if _, err := svc.Persist(art, path); err != nil {
				log.Error().Err(err).Msg("save failed")
				continue
			}
			fmt.Printf("Saved to: %s\n", path)
		}
		fmt.Println()
	}
}

func promptSave(in *bufio.Scanner) string {
	fmt.Print("Save to file? (y/N): ")
	if !in.Scan() {
		return ""
	}
	if !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
		return ""
	}
	fmt.Print("Filename [generated_topology.py]: ")
	if !in.Scan() {
		return ""
	}
	name := strings.TrimSpace(in.Text())
	if name == "" {
		name = "generated_topology.py"
	}
	return name
}

func printInteractiveHelp() {
	fmt.Println(`Describe a network topology in plain language, for example:
  - Create a simple SDN topology with 2 hosts connected to a switch
  - Create a 4G wireless network with 2 UEs connected to an eNodeB and EPC
Components available: Host, Switch, Controller, UE, EPC, EnB.
Type 'quit' to leave.`)
}
