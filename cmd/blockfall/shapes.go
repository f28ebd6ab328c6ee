package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/engine"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [id]",
	Short: "Show the pieces in every rotation",
	Long: `Prints each piece's 4x4 frame for rotations 0 to 3, left to right.
A piece can be picked by number (0-6) or letter (O, L, S, Z, I, T, J).

Examples:
  blockfall shapes
  blockfall shapes T
  blockfall shapes 4`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) error {
	ids := engine.Shapes()
	if len(args) == 1 {
		id, err := parseShapeArg(args[0])
		if err != nil {
			return err
		}
		ids = []engine.ShapeID{id}
	}

	for i, id := range ids {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n%s\n", id, int(id), renderRotations(id))
	}
	return nil
}

// parseShapeArg accepts a shape number or its letter.
func parseShapeArg(arg string) (engine.ShapeID, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		id := engine.ShapeID(n)
		if !id.Valid() {
			return 0, fmt.Errorf("shape %d out of range 0-%d", n, engine.ShapeCount-1)
		}
		return id, nil
	}
	for _, id := range engine.Shapes() {
		if strings.EqualFold(id.String(), arg) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", arg)
}

// renderRotations lays the four rotations of a shape side by side.
func renderRotations(id engine.ShapeID) string {
	cell := lipgloss.NewStyle().PaddingRight(2)
	blocks := make([]string, 0, 4)
	for rot := range 4 {
		blocks = append(blocks, cell.Render(fmt.Sprintf("r%d\n%s", rot, engine.RenderShape(id, rot))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
