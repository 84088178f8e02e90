package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/onebluedot/site/internal/admin"
	"github.com/onebluedot/site/internal/client"
	"github.com/onebluedot/site/internal/dataset"
	"github.com/onebluedot/site/pkg/config"
	"github.com/onebluedot/site/pkg/logger"
)

var (
	demoMode  bool
	flagToken string

	// accessToken is the token the current run uses, resolved from the flags
	// and the site config.
	accessToken string
	cfg         *config.SiteConfig
	api         *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Inspect and manage the ONE BLUE DOT site from the command line",
	Long: `sitectl drives the same client core the site uses: it probes the API,
resolves the featured projects, maps paths to pages and edits projects and
homepage settings. With --demo every change stays in memory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadSite()
		if err != nil {
			return err
		}
		if _, err := logger.InitTo(c.LogLevel, c.LogFormat, zapcore.Lock(os.Stderr)); err != nil {
			return err
		}
		cfg = c

		accessToken = resolveToken(flagToken, demoMode, c.AccessToken)
		api = client.New(client.Options{
			BaseURL:     c.APIURL,
			PublicKey:   c.PublicKey,
			AccessToken: accessToken,
			Timeout:     c.RequestTimeout,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the command line and puts every flag back to its default, so
// a later Execute in the same process starts clean.
func Execute() error {
	defer resetFlags(rootCmd)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "use the in-memory demo dataset")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "admin access token (defaults to SITE_ACCESS_TOKEN)")
}

// resolveToken picks the demo token for --demo, then --token, then the
// configured token.
func resolveToken(flagToken string, demo bool, configured string) string {
	switch {
	case demo:
		return dataset.DemoToken
	case flagToken != "":
		return flagToken
	}
	return configured
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func isDemo() bool { return accessToken == dataset.DemoToken }

// loadAdmin returns a synchronizer holding freshly loaded data.
func loadAdmin(ctx context.Context) (*admin.Synchronizer, admin.State) {
	s := admin.NewForToken(accessToken, api)
	st := s.Load(ctx)
	if st.Error != "" {
		fmt.Fprintln(os.Stderr, st.Error)
	}
	return s, st
}

// reportNotice prints the message a mutation left behind, such as the demo
// mode notice.
func reportNotice(s *admin.Synchronizer) {
	if msg := s.Snapshot().Error; msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
