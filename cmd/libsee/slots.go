// slots.go implements the 'libsee slots' command.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolkov/libsee/cmd/libsee/section"
	"github.com/kolkov/libsee/internal/see/slots"
)

var slotsGroup string

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List the intercepted functions",
	Long: `Slots lists every standard-library function libsee intercepts, in
report column order, with the wrapper that replaces it in instrumented
code.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listSlots(cmd.OutOrStdout(), slotsGroup)
	},
}

func init() {
	slotsCmd.Flags().StringVarP(&slotsGroup, "group", "g", "", "only list one family ("+groupNames()+")")
}

func groupNames() string {
	var names []string
	for g := slots.Group(0); ; g++ {
		name := g.String()
		if _, ok := slots.ParseGroup(name); !ok {
			break
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func listSlots(out io.Writer, group string) error {
	var want slots.Group
	filter := group != ""
	if filter {
		g, ok := slots.ParseGroup(group)
		if !ok {
			return fmt.Errorf("unknown group %q, want one of: %s", group, groupNames())
		}
		want = g
	}

	var rows [][]string
	for i, info := range slots.All() {
		if filter && info.Group != want {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprint(i),
			info.Name,
			info.Group.String(),
			"see." + info.Wrapper,
		})
	}

	table := section.Table([]string{"Slot", "Function", "Group", "Wrapper"}, rows, []int{0}, false, tableOptions())
	_, err := fmt.Fprintf(out, "%s\n%d functions\n", table, len(rows))
	return err
}
