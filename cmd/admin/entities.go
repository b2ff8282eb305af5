package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List the registered entity tables",
	Args:  cobra.NoArgs,
	RunE:  runEntities,
}

func runEntities(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENTITY\tPATH\tSTATUSES\tACTIONS")
	for _, name := range entities.Names() {
		entity, err := entities.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entity.Name,
			entity.Path,
			strings.Join(entity.Statuses, ","),
			strings.Join(entity.ActionNames(), ","),
		)
	}
	return w.Flush()
}
