package commands

import (
	"github.com/spf13/cobra"

	"github.com/yamledit/pathedit"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value stored at path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			v, err := pathedit.Get(doc, args[1], a.pathOptions()...)
			if err != nil {
				return err
			}
			return a.write(cmd, v)
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Store a value at path, creating intermediate mappings",
		Long: `Store a value at path. The value is read as YAML, so "3" is a number,
"true" a boolean and "[a, b]" a list; pass --string to store it verbatim.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			var value interface{} = args[2]
			if !raw {
				if value, err = pathedit.ParseValue([]byte(args[2])); err != nil {
					return err
				}
			}
			out, err := pathedit.Set(doc, args[1], value, a.pathOptions()...)
			if err != nil {
				return err
			}
			a.log.Info().Str("path", args[1]).Msg("value set")
			return a.write(cmd, out)
		},
	}
	cmd.Flags().BoolVar(&raw, "string", false, "store the value as a plain string")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	var noPrune bool
	cmd := &cobra.Command{
		Use:     "delete <file> <path>",
		Aliases: []string{"rm"},
		Short:   "Remove the value at path and prune emptied parents",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			opts := a.pathOptions()
			if noPrune {
				opts = append(opts, pathedit.WithPrune(false))
			}
			out, err := pathedit.Delete(doc, args[1], opts...)
			if err != nil {
				return err
			}
			a.log.Info().Str("path", args[1]).Bool("prune", !noPrune && a.cfg.PruneEnabled()).Msg("value deleted")
			return a.write(cmd, out)
		},
	}
	cmd.Flags().BoolVar(&noPrune, "no-prune", false, "keep parent mappings left empty by the deletion")
	return cmd
}
