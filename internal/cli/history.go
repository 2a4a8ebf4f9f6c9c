package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ldforge/internal/output"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the library of saved records",
	}

	var listType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List saved records, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryList(cmd, listType)
		},
	}
	list.Flags().StringVarP(&listType, "type", "t", "", "only list records of this type")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Print a saved record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryShow(cmd, args[0])
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistoryDelete(cmd, args[0])
		},
	}

	cmd.AddCommand(list, show, del)
	return cmd
}

func (a *app) runHistoryList(cmd *cobra.Command, schemaType string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	saved, err := store.List(schemaType)
	if err != nil {
		return sysError(fmt.Errorf("list records: %w", err))
	}

	out := cmd.OutOrStdout()
	if a.jsonMode {
		b, err := output.JSON(saved)
		if err != nil {
			return sysError(err)
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	if len(saved) == 0 {
		fmt.Fprintln(out, "No saved records")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\t@ID\tISSUES\tCREATED")
	fmt.Fprintln(w, "--\t----\t---\t------\t-------")
	for _, s := range saved {
		key := s.RecordKey
		if key == "" {
			key = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			s.RecordID, s.SchemaType, key, len(s.Issues), s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	fmt.Fprint(out, sb.String())
	return nil
}

func (a *app) runHistoryShow(cmd *cobra.Command, id string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	saved, err := store.Get(id)
	if err != nil {
		return historyError(err)
	}

	var b []byte
	if a.jsonMode {
		b, err = output.JSON(saved)
	} else {
		b, err = output.JSON(saved.Record)
	}
	if err != nil {
		return sysError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	if !a.jsonMode && !saved.Issues.Valid() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Validation issues: %s\n", saved.Issues)
	}
	return nil
}

func (a *app) runHistoryDelete(cmd *cobra.Command, id string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Delete(id); err != nil {
		return historyError(err)
	}
	a.logger.Debug("record deleted", zap.String("record_id", id))
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

// historyError maps a missing record to a user error.
func historyError(err error) error {
	if errors.Is(err, types.ErrNotFound) {
		return userError(err)
	}
	return sysError(err)
}
