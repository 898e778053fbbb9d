// lftgen is the command-line front end for the AI topology generator.
//
//	lftgen generate "Create a simple SDN topology with 2 hosts connected to a switch" -o topology.py
//	lftgen interactive --local
//	lftgen examples
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lft-ai/lftgen/shared/backend"
	"github.com/lft-ai/lftgen/shared/config"
	"github.com/lft-ai/lftgen/shared/gen"
	"github.com/lft-ai/lftgen/shared/prompt"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var code int
	switch os.Args[1] {
	case "generate":
		code = runGenerate(os.Args[2:])
	case "interactive":
		code = runInteractive(os.Args[2:])
	case "examples":
		code = runExamples()
	default:
		usage()
		code = 1
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: lftgen <command> [flags]

Commands:
  generate <description>   Generate topology code from a description
  interactive              Interactive topology generation
  examples                 Show example topology descriptions

Run 'lftgen <command> -h' for command flags.`)
}

// backendFlags registers the flags shared by generate and interactive and
// returns a constructor for the configured service.
func backendFlags(fs *flag.FlagSet) func() (*gen.Service, error) {
	local := fs.Bool("local", false, "use the local model instead of the hosted API")
	model := fs.String("model", "", "model identifier (default from LFTGEN_MODEL)")
	token := fs.String("token", "", "API token (default from HF_TOKEN)")
	verbose := fs.Bool("v", false, "verbose output")

	return func() (*gen.Service, error) {
		if *verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		env, err := config.Load()
		if err != nil {
			return nil, err
		}
		if *local {
			env.Variant = backend.VariantLocal
		}
		if *model != "" {
			env.Model = *model
			env.LocalModel = *model
		}
		if *token != "" {
			env.Token = *token
		}
		b, err := backend.New(env.BackendConfig(), log.Logger)
		if err != nil {
			return nil, err
		}
		return gen.New(b, gen.WithLogger(log.Logger)), nil
	}
}

func runExamples() int {
	examples := [][2]string{
		{"Simple SDN Topology", prompt.SimpleSDNRequest},
		{"4G Wireless Network", "Create a 4G wireless network with 2 UEs connected to an eNodeB and EPC"},
		{"Multi-Switch SDN", "Create an SDN topology with 3 switches, 1 controller, and 4 hosts"},
		{"Fog Computing Network", "Create a fog computing network with edge nodes, fog nodes, and cloud connection"},
		{"Enterprise Network", "Create an enterprise network with multiple VLANs, switches, and a gateway"},
		{"IoT Network", "Create an IoT network with sensors, gateways, and cloud connectivity"},
	}

	fmt.Println("Example Topology Descriptions")
	fmt.Println(banner)
	for i, ex := range examples {
		fmt.Printf("%d. %s\n   %s\n\n", i+1, ex[0], ex[1])
	}
	fmt.Println("Usage:")
	fmt.Println(`  lftgen generate "<description>" -o output.py`)
	fmt.Println("  lftgen interactive")
	return 0
}

const banner = "=================================================="
