package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/usps-zip4/internal/config"
	"github.com/usps-zip4/internal/debug"
	"github.com/usps-zip4/internal/normalize"
	"github.com/usps-zip4/internal/prompt"
	"github.com/usps-zip4/internal/usps"
)

const (
	exitOK          = 0
	exitUsage       = 1
	exitLookupError = 2
)

// maxThrottle bounds --throttle so the sleep stays a representable duration
const maxThrottle = time.Hour

// options holds the parsed command line
type options struct {
	street   string
	street2  string
	city     string
	state    string
	address  string
	throttle float64
	raw      bool
	debug    bool
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}

	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}

// exitCode prints err and maps it to the process exit status
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var uerr *usps.Error
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "ERROR: %s\n", uerr.Message)
		return exitLookupError
	}
	fmt.Fprintln(stderr, err)
	return exitUsage
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "usps-zip4",
		Short:         "Look up USPS ZIP+4 for a street address",
		Long:          `Look up USPS ZIP+4 for a street address (Web Tools ZipCodeLookup).`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVar(&opts.street, "street", "", "Street address line (e.g., '123 Main St')")
	flags.StringVar(&opts.street2, "street2", "", "Secondary/unit (e.g., 'Apt 5B', 'Ste 200')")
	flags.StringVar(&opts.city, "city", "", "City")
	flags.StringVar(&opts.state, "state", "", "State (2-letter)")
	flags.StringVar(&opts.address, "address", "", "Single-line address to split into fields with libpostal")
	flags.Float64Var(&opts.throttle, "throttle", config.GetEnvFloat(config.EnvThrottle, 0.2), "Sleep seconds before request")
	flags.BoolVar(&opts.raw, "raw", false, "Print normalized fields + ZIP components on separate lines")
	flags.BoolVar(&opts.debug, "debug", config.GetEnvBool(config.EnvDebug, false), "Print raw USPS response for troubleshooting")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg := config.Load()
	cfg.Debug = opts.debug
	cfg.DebugWriter = cmd.ErrOrStderr()

	delay, err := throttleDelay(opts.throttle)
	if err != nil {
		return err
	}

	client, err := usps.New(cfg)
	if err != nil {
		return err
	}
	debug.Output(cfg.DebugWriter, opts.debug, "Using endpoint %s", client.Endpoint())

	addr := usps.Address{
		Street:  opts.street,
		Street2: opts.street2,
		City:    opts.city,
		State:   opts.state,
	}
	if !normalize.IsBlank(opts.address) {
		parsed, err := normalize.ParseFreeform(cfg.DebugWriter, opts.debug, opts.address)
		if err != nil {
			return err
		}
		addr = normalize.Merge(addr, parsed)
	}

	addr, err = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()).Fill(addr)
	if err != nil {
		return err
	}
	debug.Output(cfg.DebugWriter, opts.debug, "Looking up %s", addr)

	if delay > 0 {
		time.Sleep(delay)
	}

	result, err := client.Lookup(cmd.Context(), addr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.raw {
		return usps.WriteRaw(out, *result)
	}
	return usps.WriteSummary(out, *result)
}

// throttleDelay converts --throttle seconds to a sleep. Zero or negative
// values disable the sleep.
func throttleDelay(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("invalid --throttle %v: must be a finite number of seconds", seconds)
	}
	if seconds <= 0 {
		return 0, nil
	}
	if seconds > maxThrottle.Seconds() {
		return 0, fmt.Errorf("invalid --throttle %v: must be at most %.0f seconds", seconds, maxThrottle.Seconds())
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
