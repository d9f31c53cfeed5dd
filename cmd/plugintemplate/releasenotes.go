package main

import (
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/spf13/cobra"

	"github.com/vst3go/plugintemplate/internal/release"
	"github.com/vst3go/plugintemplate/internal/version"
)

var (
	notesVersion string
	notesSince   string
	notesFormat  string
	notesAI      bool
)

// newChatClient connects the --ai path to a model provider.
var newChatClient = release.NewClient

var releaseNotesCmd = &cobra.Command{
	Use:   "release-notes",
	Short: "Generate release notes from git history",
	Long: `Generate release notes from the commits since the last tag (or since
--since), grouped into features, fixes and improvements.

With --ai the commits are sent to OpenRouter (OPENROUTER_KEY_PRIVATE) or
OpenAI (OPENAI_API_KEY), read from the env file or the environment. If no
key is set or every request fails the standard notes are printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !release.ValidFormat(notesFormat) {
			return errors.Errorf("unknown format %q, want markdown or sparkle", notesFormat)
		}
		v := notesVersion
		if v == "" {
			v = version.Release().String()
		}

		commits := release.Git{}.Log(cmd.Context(), notesSince)
		logger.Debug("%d commits for release %s", len(commits), v)

		if notesAI {
			providers, err := release.Providers(versionEnvFile())
			if err != nil {
				return err
			}
			if len(providers) == 0 {
				logger.Warn("no %s or %s set, writing standard notes", release.KeyOpenRouter, release.KeyOpenAI)
			}

			w := &release.Writer{Providers: providers, NewClient: newChatClient, Logger: logger.WithPrefix("release")}
			if notes, ok := w.Write(cmd.Context(), v, commits); ok {
				if notesFormat == release.FormatSparkle {
					notes = release.MarkdownToSparkle(notes)
				}
				cmd.Println(notes)
				return nil
			}
		}

		notes, err := release.Categorize(v, commits).Render(notesFormat)
		if err != nil {
			return err
		}
		cmd.Println(notes)
		return nil
	},
}

func init() {
	flags := releaseNotesCmd.Flags()
	flags.StringVar(&notesVersion, "version", "", "release version (default the built version)")
	flags.StringVar(&notesSince, "since", "", "list commits after this tag (default the last tag)")
	flags.StringVar(&notesFormat, "format", release.FormatMarkdown, "output format: markdown or sparkle")
	flags.BoolVar(&notesAI, "ai", false, "have a chat model write the notes")
	rootCmd.AddCommand(releaseNotesCmd)
}
