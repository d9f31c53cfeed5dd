package main

import (
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Save or load the plugin state",
}

var stateSaveCmd = &cobra.Command{
	Use:   "save FILE",
	Short: "Write the plugin state container to FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := preparedHost()
		if err != nil {
			return err
		}
		defer h.Release()

		if err := h.SaveState(args[0]); err != nil {
			return err
		}
		cmd.Printf("State saved to %s\n", args[0])
		return nil
	},
}

var stateLoadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Read a plugin state container from FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := preparedHost()
		if err != nil {
			return err
		}
		defer h.Release()

		if err := h.LoadState(args[0]); err != nil {
			return err
		}
		cmd.Printf("State loaded from %s\n", args[0])
		return nil
	},
}

func init() {
	stateCmd.AddCommand(stateSaveCmd, stateLoadCmd)
	rootCmd.AddCommand(stateCmd)
}
