package main

import (
	"github.com/spf13/cobra"

	"github.com/vst3go/plugintemplate/pkg/framework/bus"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print plugin metadata and bus configuration",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, _ []string) error {
	p := newProcessor()
	info := p.Info()
	if err := info.ValidateUID(); err != nil {
		return err
	}

	cmd.Printf("Name:      %s\n", info.Name)
	cmd.Printf("ID:        %s\n", info.ID)
	cmd.Printf("UID:       %s\n", info.UIDString())
	cmd.Printf("Version:   %s\n", info.Version)
	cmd.Printf("Vendor:    %s\n", info.Vendor)
	cmd.Printf("Category:  %s\n", info.Category)
	cmd.Printf("MIDI:      in=%t out=%t effect=%t\n", p.AcceptsMidi(), p.ProducesMidi(), p.IsMidiEffect())
	cmd.Printf("Tail:      %gs\n", p.TailLengthSeconds())
	cmd.Printf("Programs:  %d (current %d %q)\n", p.NumPrograms(), p.CurrentProgram(), p.ProgramName(p.CurrentProgram()))

	if p.HasEditor() {
		w, h := p.CreateEditor().Size()
		cmd.Printf("Editor:    %dx%d\n", w, h)
	} else {
		cmd.Printf("Editor:    none\n")
	}

	buses := p.Buses()
	cmd.Printf("Buses:\n")
	for _, dir := range []bus.Direction{bus.DirectionInput, bus.DirectionOutput} {
		label := "in "
		if dir == bus.DirectionOutput {
			label = "out"
		}
		for i := int32(0); i < buses.GetBusCount(bus.MediaTypeAudio, dir); i++ {
			b := buses.GetBusInfo(bus.MediaTypeAudio, dir, i)
			cmd.Printf("  %s %d  %-10s %-8s active=%t\n", label, i, b.Name, b.Arrangement, b.IsActive)
		}
	}
	return nil
}
