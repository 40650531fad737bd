package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/users/internal/form"
	"github.com/idilsaglam/users/internal/store/jsonstore"
	"github.com/idilsaglam/users/internal/ui"
	"github.com/idilsaglam/users/internal/userlist"
)

func newAddCmd() *cobra.Command {
	var (
		asJSON bool
		out    string
	)
	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Submit names through the form and print the resulting list",
		Long: `add runs the page without a terminal: each argument is typed into the
form and submitted, in order. Pass "" to submit an empty entry.`,
		Example: `  users add "Doc Brown"
  users add "Doc Brown" "Lorraine Baines" --json
  users add "Biff" --out users.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			c, err := e.newContainer()
			if err != nil {
				return err
			}
			defer c.Close()
			defer e.logMetrics()

			// Arguments are submitted as given; the char limit only caps typing.
			f := form.New(c)
			for _, name := range args {
				f.Change(name)
				if err := f.Submit(); err != nil {
					return fmt.Errorf("add %q: %w", name, err)
				}
			}

			s, err := c.State()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				p, err := jsonstore.Save(out, s)
				if err != nil {
					return fmt.Errorf("save: %w", err)
				}
				e.log.Info("snapshot written", "path", p)
			}
			if asJSON {
				return jsonstore.Encode(w, s)
			}

			lines := []string{ui.Header("Users", s.Len()), ""}
			lines = append(lines, userlist.Lines(s)...)
			ui.Panel(w, lines)
			if len(args) > 0 {
				ui.OK(w, fmt.Sprintf("added %d", len(args)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")
	cmd.Flags().StringVar(&out, "out", "", "also write the JSON snapshot to this file")
	return cmd
}
