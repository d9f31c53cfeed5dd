package main

import (
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/spf13/cobra"

	"github.com/vst3go/plugintemplate/pkg/framework/bus"
	"github.com/vst3go/plugintemplate/pkg/framework/debug"
	"github.com/vst3go/plugintemplate/pkg/host"
)

var (
	renderState    string
	renderWatch    bool
	renderBitDepth int
	renderReport   bool
)

var renderCmd = &cobra.Command{
	Use:   "render IN.wav OUT.wav",
	Short: "Process a wav file through the plugin",
	Long: `Process a wav file through the plugin and write the result.

The input's channel count selects the layout offered to the plugin (the
same arrangement on input and output). With --watch the input is rendered
again every time it changes, until interrupted.`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderState, "state", "", "state file to load before rendering")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "render again whenever the input changes")
	renderCmd.Flags().IntVar(&renderBitDepth, "bit-depth", 0, "output bit depth (default from config)")
	renderCmd.Flags().BoolVar(&renderReport, "profile", false, "print the block timing report")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	bitDepth := renderBitDepth
	if bitDepth == 0 {
		bitDepth = cfg.Host.BitDepth
	}
	if !host.SupportedBitDepth(bitDepth) {
		return errors.Errorf("unsupported bit depth %d", bitDepth)
	}

	render := func() error {
		return renderFile(cmd, in, out, bitDepth)
	}
	if err := render(); err != nil {
		if !renderWatch {
			return err
		}
		logger.Error("%v", err)
	}
	if !renderWatch {
		return nil
	}

	return host.Watch(cmd.Context(), logger.WithPrefix("watch"), in, render)
}

func renderFile(cmd *cobra.Command, in, out string, bitDepth int) error {
	buf, err := host.ReadWAV(in)
	if err != nil {
		return err
	}

	h, err := newHost(float64(buf.Format.SampleRate))
	if err != nil {
		return err
	}
	if renderState != "" {
		if err := h.LoadState(renderState); err != nil {
			return err
		}
	}

	arr := bus.ArrangementForChannels(int32(buf.Format.NumChannels))
	if _, err := h.Negotiate(bus.NewLayout(arr, arr)); err != nil {
		return errors.Wrapf(err, "%v has %d channels", in, buf.Format.NumChannels)
	}
	if err := h.Prepare(); err != nil {
		return err
	}
	defer h.Release()

	rendered, err := h.Render(cmd.Context(), buf)
	if err != nil {
		return errors.Wrapf(err, "render %v", in)
	}
	if err := host.WriteWAV(out, rendered, bitDepth); err != nil {
		return err
	}

	frames := 0
	if n := rendered.Format.NumChannels; n > 0 {
		frames = len(rendered.Data) / n
	}
	cmd.Printf("Rendered %s -> %s: %d frames, %s, %d bit, load %.2f%%\n",
		in, out, frames, h.Layout(), bitDepth, h.Profiler().Load(h.BlockSize()))
	cmd.Print(debug.Summary(debug.AnalyzeChannels(host.Channels(rendered))))
	if renderReport {
		cmd.Print(h.Profiler().BlockReport(h.BlockSize()))
	}
	return nil
}
