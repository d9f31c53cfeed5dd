package main

import (
	"github.com/spf13/cobra"

	"github.com/vst3go/plugintemplate/internal/config"
	"github.com/vst3go/plugintemplate/internal/version"
)

var (
	versionExport bool
	bumpDryRun    bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the version compiled into the binary.

With --export the project version is read from the env file instead and
printed as shell export lines for build scripts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !versionExport {
			v := version.Release()
			cmd.Printf("plugintemplate version %s (build %d)\n", v, v.Build)
			return nil
		}

		v, err := version.Load(versionEnvFile())
		if err != nil {
			return err
		}
		cmd.Print(v.Export())
		return nil
	},
}

var bumpCmd = &cobra.Command{
	Use:       "bump [major|minor|patch|build]",
	Short:     "Bump the project version in the env file",
	Long:      `Bump the project version. The default is patch. The build number increments on every bump.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{version.BumpMajor, version.BumpMinor, version.BumpPatch, version.BumpBuild},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := version.BumpPatch
		if len(args) > 0 {
			kind = args[0]
		}

		path := versionEnvFile()
		current, err := version.Load(path)
		if err != nil {
			return err
		}
		next, err := current.Bump(kind)
		if err != nil {
			return err
		}

		cmd.Printf("Version bump: %s → %s\n", current, next)
		cmd.Printf("Build number: %d → %d\n", current.Build, next.Build)
		cmd.Printf("AU version int: %d (0x%06X)\n", next.AUInt(), next.AUInt())

		if bumpDryRun {
			cmd.Println("[DRY RUN] No files were modified")
			return nil
		}
		if err := version.Save(path, next); err != nil {
			return err
		}
		logger.Info("version %s written to %s", next.Full(), path)
		return nil
	},
}

func versionEnvFile() string {
	if envFile != "" {
		return envFile
	}
	return config.DefaultEnvFile
}

func init() {
	versionCmd.Flags().BoolVar(&versionExport, "export", false, "print the env file version as shell exports")
	bumpCmd.Flags().BoolVar(&bumpDryRun, "dry-run", false, "show the new version without writing it")
	versionCmd.AddCommand(bumpCmd)
	rootCmd.AddCommand(versionCmd)
}
