package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-pmecc/internal/crypto/curves"
)

const cmdRoot = "pmecc"

// app carries the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func main() {
	// On failure Cobra prints the error string, so we only need to exit
	// with a non-0 status.
	if newRootCmd(nil).Execute() != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil logger is replaced by a zap
// logger chosen from the verbose setting.
func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{v: viper.New(), log: log}

	// For environment variables.
	a.v.SetEnvPrefix(cmdRoot)
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cmd := &cobra.Command{
		Use:          cmdRoot,
		Short:        "Elliptic curve arithmetic over pseudo-Mersenne prime fields",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("curve", "c", "k256", "Curve name, see the curves command")
	flags.BoolP("verbose", "v", false, "Human readable debug logging")
	a.bindFlags(flags, "curve", "verbose")

	cmd.AddCommand(a.curvesCmd())
	cmd.AddCommand(a.mulCmd())
	cmd.AddCommand(a.validateCmd())
	cmd.AddCommand(a.verifyCmd())
	return cmd
}

// bindFlags makes the named flags visible through viper, so PMECC_<NAME>
// environment variables apply when a flag is not set.
func (a *app) bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
}

func (a *app) initLogger() error {
	if a.log != nil {
		return nil
	}
	var err error
	if a.v.GetBool("verbose") {
		a.log, err = zap.NewDevelopment()
	} else {
		a.log, err = zap.NewProduction()
	}
	return errors.Wrap(err, "failed to create logger")
}

// curve resolves the configured curve.
func (a *app) curve() (*curves.Weierstrass, error) {
	name := a.v.GetString("curve")
	c, err := curves.ByName(name)
	if err != nil {
		return nil, errors.Wrapf(err, "curve %q", name)
	}
	return c, nil
}
