package commands

import (
	"github.com/spf13/cobra"

	"github.com/yamledit/pathedit"
)

func newPatchCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "patch <file> <patch.json>",
		Short: "Apply an RFC-6902 JSON Patch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			patch, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			out, err := pathedit.ApplyJSONPatchAtPath(doc, patch, at, a.pathOptions()...)
			if err != nil {
				return err
			}
			a.log.Info().Str("patch", args[1]).Str("at", at).Msg("JSON Patch applied")
			return a.write(cmd, out)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "apply the patch relative to this path")
	return cmd
}

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <file> <merge.json>",
		Short: "Apply an RFC-7386 JSON Merge Patch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			patch, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			out, err := pathedit.ApplyMergePatch(doc, patch)
			if err != nil {
				return err
			}
			a.log.Info().Str("patch", args[1]).Msg("merge patch applied")
			return a.write(cmd, out)
		},
	}
}
