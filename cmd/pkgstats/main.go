// Command pkgstats prints the packages that own the most files for a Debian architecture
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"pkgstats/internal/adapters/mirror"
	"pkgstats/internal/core/arch"
	"pkgstats/internal/core/contents"
	"pkgstats/internal/platform/config"
	perr "pkgstats/internal/platform/errors"
	"pkgstats/internal/platform/logger"
	"pkgstats/internal/report"
	"pkgstats/internal/services/stats/domain"
	statssvc "pkgstats/internal/services/stats/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// seams for tests
var (
	newService = func(cfg config.Conf) domain.ServicePort {
		return statssvc.New(mirror.FromConfig(cfg))
	}
	newRunID = func() string { return uuid.NewString() }
)

const promptText = "Please enter the architecture of the Contents file to download"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(config.New().Prefix("PKGSTATS_")).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Conf) *cobra.Command {
	var (
		architecture string
		top          int
	)
	cmd := &cobra.Command{
		Use:   "pkgstats",
		Short: "Top packages by number of files in a Debian Contents index",
		Long: `Download Contents-<arch>.gz from a Debian mirror and print the packages
that own the most files, one "package  count" line each in ranked order.

When --architecture is omitted you are prompted for it. The mirror, suite and
component come from PKGSTATS_MIRROR_URL, PKGSTATS_SUITE and PKGSTATS_COMPONENT.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("architecture") {
				a, err := prompt(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				architecture = a.String()
				return nil
			}
			a, err := arch.Parse(architecture)
			if err != nil {
				return err
			}
			architecture = a.String()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// flags are valid past this point, failures are not usage errors
			cmd.SilenceUsage = true

			runID := newRunID()
			ctx := logger.WithRun(cmd.Context(), runID)
			log := logger.C(ctx).With().Str("component", "cli").Logger()

			res, err := newService(cfg).Top(ctx, domain.TopInput{Architecture: architecture, N: top})
			if err != nil {
				log.Error().Err(err).Str("code", perr.CodeOf(err).String()).Msg("pkgstats failed")
				return err
			}
			return report.Write(cmd.OutOrStdout(), res.Entries)
		},
	}
	bindFlags(cmd.Flags(), &architecture, &top)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, architecture *string, top *int) {
	fs.StringVarP(architecture, "architecture", "a", "",
		"Debian architecture, case-insensitive (one of "+strings.Join(arch.Names(), ", ")+")")
	fs.IntVarP(top, "top", "n", contents.DefaultTopN, "number of packages to print")
}

// prompt asks on out until in yields a known architecture; EOF ends the dialogue with an error
func prompt(in io.Reader, out io.Writer) (arch.Arch, error) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s (%s): ", promptText, strings.Join(arch.Names(), ", "))
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", perr.InvalidArgf("no architecture given")
		}
		a, err := arch.Parse(sc.Text())
		if err == nil {
			return a, nil
		}
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
