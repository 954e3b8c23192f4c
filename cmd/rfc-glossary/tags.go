package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/evanschultz/rfc-glossary/pkg/models"
	"github.com/evanschultz/rfc-glossary/pkg/tags"
)

var selectTags []string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show tag facets and the articles a selection matches",
	Long: `Show the tag facets grouped by category. Every --select toggles one tag,
in order, so repeating an id removes it again. Articles are listed when they
carry every selected tag.`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().StringSliceVarP(&selectTags, "select", "s", nil, "toggle a tag id (repeatable)")
}

func runTags(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cfg)
	if err != nil {
		return err
	}

	sel, err := selectionFromFlags(a.tags, selectTags)
	if err != nil {
		return err
	}

	for _, g := range a.tags.Groups() {
		pterm.DefaultSection.Println(g.Category.Label())
		if err := pterm.DefaultBulletList.WithItems(facetItems(g, sel)).Render(); err != nil {
			return err
		}
	}

	matched := a.articles.Filter(sel)
	pterm.DefaultSection.Printf("Articles (%d/%d)", len(matched), len(a.articles.Articles()))
	if len(matched) == 0 {
		pterm.Warning.Println("No article carries every selected tag")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(articleRows(matched)).Render()
}

// selectionFromFlags replays each --select as a toggle.
func selectionFromFlags(catalog *tags.Catalog, ids []string) (tags.Selection, error) {
	sel := tags.Selection{}
	for _, id := range ids {
		if _, ok := catalog.Get(id); !ok {
			return nil, errors.WithHint(errors.Newf("unknown tag %q", id), "run `rfc-glossary tags` to list tag ids")
		}
		sel = tags.Toggle(sel, id)
	}
	return sel, nil
}

func facetItems(g tags.Group, sel tags.Selection) []pterm.BulletListItem {
	items := make([]pterm.BulletListItem, 0, len(g.Tags))
	for _, t := range g.Tags {
		mark := "[ ]"
		if sel.Contains(t.ID) {
			mark = "[x]"
		}
		items = append(items, pterm.BulletListItem{
			Level:  0,
			Text:   fmt.Sprintf("%s %s (%s)", mark, t.Name, t.ID),
			Bullet: "•",
		})
	}
	return items
}

func articleRows(articles []models.Article) pterm.TableData {
	rows := pterm.TableData{{"RFC", "Title", "Year"}}
	for _, a := range articles {
		rows = append(rows, []string{a.RFCLabel(), a.Title, fmt.Sprint(a.Year)})
	}
	return rows
}
