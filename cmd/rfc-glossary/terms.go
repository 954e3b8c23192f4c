package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/muesli/reflow/truncate"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/evanschultz/rfc-glossary/pkg/article"
	"github.com/evanschultz/rfc-glossary/pkg/glossary"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
)

var listCategory string

var lookupCmd = &cobra.Command{
	Use:   "lookup <keyword>...",
	Short: "Resolve keywords to glossary entries and render them",
	Long: `Resolve each keyword the way article annotation does: display names are
matched first, then ids. Matching ignores case and punctuation, so
"HTTP/1.0", "http-1-0" and "Http10" all find the same entry.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

var relatedCmd = &cobra.Command{
	Use:   "related <id|name>",
	Short: "Show the terms a glossary entry points to",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelated,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List glossary terms grouped by category",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only list one category (protocol, network, security, web, email, general)")
}

func runLookup(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cfg)
	if err != nil {
		return err
	}

	var missing []string
	for _, keyword := range args {
		term, ok := a.glossary.Resolver.Resolve(keyword)
		if !ok {
			logger.Logger.Debugw("lookup miss", logger.FieldKeyword, keyword)
			missing = append(missing, keyword)
			continue
		}
		out, err := a.renderer.Render(article.TermCard(term, a.glossary.Relations.RelatedOf(term)))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}

	if len(missing) > 0 {
		return errors.WithHint(
			errors.Newf("no glossary entry for %s", strings.Join(missing, ", ")),
			"run `rfc-glossary list` to see every term",
		)
	}
	return nil
}

func runRelated(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cfg)
	if err != nil {
		return err
	}

	term, ok := a.glossary.Resolver.Resolve(args[0])
	if !ok {
		return errors.Newf("no glossary entry for %s", args[0])
	}

	related := a.glossary.Relations.RelatedOf(term)
	pterm.DefaultSection.Println(term.Term)
	if len(related) == 0 {
		pterm.Info.Println("No related terms in the catalog")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(termRows(related)).Render()
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cfg)
	if err != nil {
		return err
	}

	categories := a.glossary.Categories.Categories()
	if listCategory != "" {
		c, err := glossary.ParseCategory(listCategory)
		if err != nil {
			return err
		}
		categories = []glossary.Category{c}
	}

	counts := a.glossary.Categories.Counts()
	for _, c := range categories {
		pterm.DefaultSection.Printf("%s (%d)", c.Label(), counts[c])
		if counts[c] == 0 {
			pterm.Info.Println("No terms in this category")
			continue
		}
		terms := a.glossary.Categories.ByCategory(c)
		if err := pterm.DefaultTable.WithHasHeader().WithData(termRows(terms)).Render(); err != nil {
			return err
		}
	}
	return nil
}

// termRows is the table layout shared by list and related.
func termRows(terms []glossary.Term) pterm.TableData {
	rows := pterm.TableData{{"ID", "Term", "Category", "Definition"}}
	for _, t := range terms {
		rows = append(rows, []string{t.ID, t.Term, string(t.Category), summarize(t.Definition, 72)})
	}
	return rows
}

// summarize collapses whitespace and cuts s to at most n terminal cells.
func summarize(s string, n int) string {
	return truncate.StringWithTail(strings.Join(strings.Fields(s), " "), uint(n), "...")
}
