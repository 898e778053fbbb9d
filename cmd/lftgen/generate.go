package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

func runGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	output := fs.String("o", "", "write the generated code to this path")
	report := fs.Bool("validate", false, "print the validation verdict")
	build := backendFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lftgen generate [flags] <description>")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	description := fs.Arg(0)
	if description == "" {
		fs.Usage()
		return 1
	}

	svc, err := build()
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		return 1
	}

	art, err := svc.Generate(context.Background(), description)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		return 1
	}

	if *report {
		if art.Valid {
			fmt.Println("Validation: PASSED")
		} else {
			fmt.Println("Validation: FAILED")
		}
	}

	if *output != "" {
		path, err := svc.Persist(art, *output)
		if err != nil {
			log.Error().Err(err).Msg("save failed")
			return 1
		}
		fmt.Printf("Topology generated and saved to: %s\n", path)
		return 0
	}

	fmt.Println("Generated Topology Code:")
	fmt.Println(banner)
	fmt.Println(art.Code)
	fmt.Println(banner)
	return 0
}
