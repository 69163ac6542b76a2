package main

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=1.2.3".
var version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the apicat version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := versionString(version)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// versionString formats a build version. "dev" marks an unreleased build;
// anything else must be a semantic version, with or without a leading v.
func versionString(raw string) (string, error) {
	if raw == "dev" {
		return "apicat dev (development build)", nil
	}
	v, err := semver.ParseTolerant(raw)
	if err != nil {
		return "", fmt.Errorf("error parsing version '%s': %w", raw, err)
	}
	s := "apicat v" + v.String()
	if len(v.Pre) > 0 {
		s += " (pre-release)"
	}
	return s, nil
}
