package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-leo/specfilter/journal"
)

type journalFlags struct {
	from    string
	entries []string
	remove  []int
	out     string
}

func (a *app) journalCmd() *cobra.Command {
	var flags journalFlags

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Build a journal from entries, print it and optionally save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []journal.Option{journal.WithLogger(a.logger)}
			if a.cfg.Journal.Open {
				opts = append(opts, journal.WithLauncher(journal.ExecLauncher{}))
			}
			persistence := journal.NewPersistence(opts...)

			j := journal.New()
			if flags.from != "" {
				loaded, err := persistence.Load(a.journalPath(flags.from))
				if err != nil {
					return err
				}
				j = loaded
			}
			for _, text := range flags.entries {
				n := j.AddEntry(text)
				a.logger.Debug().Int("entry", n).Msg("entry added")
			}
			for _, index := range flags.remove {
				if err := j.RemoveEntry(index); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), j.String()); err != nil {
				return err
			}
			if flags.out == "" {
				return nil
			}
			return persistence.Save(cmd.Context(), j, a.journalPath(flags.out), a.cfg.Journal.Overwrite)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "start from a previously saved journal file")
	cmd.Flags().StringArrayVar(&flags.entries, "entry", nil, "entry text to add (repeatable)")
	cmd.Flags().IntSliceVar(&flags.remove, "remove", nil, "positional index to remove after adding, applied in order")
	cmd.Flags().StringVar(&flags.out, "out", "", "file to save the journal to, relative to the journal directory")
	cmd.Flags().Bool("overwrite", false, "replace the file if it exists; otherwise an existing file is left untouched")
	cmd.Flags().Bool("open", false, "open the file after saving it")
	cmd.Flags().String("dir", "", "journal directory")
	_ = a.v.BindPFlag("journal.overwrite", cmd.Flags().Lookup("overwrite"))
	_ = a.v.BindPFlag("journal.open", cmd.Flags().Lookup("open"))
	_ = a.v.BindPFlag("journal.dir", cmd.Flags().Lookup("dir"))
	return cmd
}

func (a *app) journalPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.cfg.Journal.Dir, name)
}
