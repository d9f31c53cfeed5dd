package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/spf13/cobra"

	"github.com/vst3go/plugintemplate/pkg/editor"
)

var (
	editorDump      bool
	editorPlain     bool
	editorResizable bool
)

var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Show the plugin editor in the terminal",
	Long: `Show the plugin editor in the terminal.

Editor pixels are mapped to terminal cells using the [editor] cell size.

Controls:
  q, Esc, Ctrl+C - Quit`,
	Args: cobra.NoArgs,
	RunE: runEditor,
}

func init() {
	editorCmd.Flags().BoolVar(&editorDump, "dump", false, "print the paint calls instead of opening the editor")
	editorCmd.Flags().BoolVar(&editorPlain, "plain", false, "print the rendered editor without colour and exit")
	editorCmd.Flags().BoolVar(&editorResizable, "resizable", false, "resize the editor with the terminal")
	rootCmd.AddCommand(editorCmd)
}

func runEditor(cmd *cobra.Command, _ []string) error {
	p := newProcessor()
	if !p.HasEditor() {
		return errors.Errorf("%s has no editor", p.Name())
	}
	e := p.CreateEditor()

	switch {
	case editorDump:
		var rec editor.Recorder
		e.Paint(&rec)
		cmd.Print(rec.String())
		return nil
	case editorPlain:
		w, h := e.Size()
		canvas := editor.NewCanvas(w, h, cfg.Editor.CellWidth, cfg.Editor.CellHeight)
		e.Paint(canvas)
		cmd.Println(canvas.Plain())
		return nil
	}

	view := editor.NewView(e, cfg.Editor.CellWidth, cfg.Editor.CellHeight)
	view.Resizable = editorResizable

	program := tea.NewProgram(view,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return errors.Wrapf(err, "editor")
	}
	return nil
}
