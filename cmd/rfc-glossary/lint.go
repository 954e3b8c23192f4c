package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/evanschultz/rfc-glossary/pkg/glossary"
)

var lintStrict bool

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report duplicate term ids and dangling related-term references",
	Long: `Report data-quality issues in the term catalog. Neither issue changes how
lookups behave: for a duplicated id the id lookup returns the last entry
while name matching returns the first, and dangling references are skipped.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "exit non-zero when any issue is found")
}

func runLint(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cfg)
	if err != nil {
		return err
	}

	dups := a.glossary.Catalog.Duplicates()
	dangling := a.glossary.Relations.Dangling()

	pterm.DefaultSection.Printf("Duplicate ids (%d)", len(dups))
	if len(dups) == 0 {
		pterm.Success.Println("No duplicate ids")
	} else if err := pterm.DefaultTable.WithHasHeader().WithData(duplicateRows(a.glossary, dups)).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.Printf("Dangling related terms (%d)", len(dangling))
	if len(dangling) == 0 {
		pterm.Success.Println("Every related id resolves")
	} else if err := pterm.DefaultTable.WithHasHeader().WithData(danglingRows(dangling)).Render(); err != nil {
		return err
	}

	if lintStrict && len(dups)+len(dangling) > 0 {
		return errors.Newf("%d duplicate ids, %d dangling references", len(dups), len(dangling))
	}
	return nil
}

// duplicateRows lists each duplicated id with the entry each lookup path
// returns: the id index keeps the last occurrence, name matching the first
// entry carrying the display name.
func duplicateRows(g *glossary.Glossary, dups []glossary.Duplicate) pterm.TableData {
	c := g.Catalog
	rows := pterm.TableData{{"Key", "Positions", "Categories", "Id lookup", "Name lookup"}}
	for _, d := range dups {
		positions := make([]string, len(d.Positions))
		categories := make([]string, len(d.Positions))
		for i, p := range d.Positions {
			positions[i] = fmt.Sprint(p)
			categories[i] = string(c.At(p).Category)
		}
		last := d.Positions[len(d.Positions)-1]
		byName := "-"
		if t, ok := g.Resolver.Resolve(c.At(d.Positions[0]).Term); ok {
			byName = describe(c, t)
		}
		rows = append(rows, []string{
			d.Key,
			strings.Join(positions, ", "),
			strings.Join(categories, ", "),
			fmt.Sprintf("#%d (%s)", last, c.At(last).Category),
			byName,
		})
	}
	return rows
}

// describe names t by its catalog position when it can be found.
func describe(c *glossary.Catalog, t glossary.Term) string {
	for i := 0; i < c.Len(); i++ {
		at := c.At(i)
		if at.ID == t.ID && at.Definition == t.Definition && at.Category == t.Category {
			return fmt.Sprintf("#%d (%s)", i, t.Category)
		}
	}
	return fmt.Sprintf("%s (%s)", t.ID, t.Category)
}

func danglingRows(edges []glossary.DanglingEdge) pterm.TableData {
	rows := pterm.TableData{{"Term", "Position", "Missing id"}}
	for _, e := range edges {
		rows = append(rows, []string{e.From, fmt.Sprint(e.Position), e.To})
	}
	return rows
}
