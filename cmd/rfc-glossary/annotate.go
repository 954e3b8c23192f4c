package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/evanschultz/rfc-glossary/pkg/article"
	"github.com/evanschultz/rfc-glossary/pkg/logger"
)

var annotateRaw bool

var annotateCmd = &cobra.Command{
	Use:   "annotate <file|->",
	Short: "Resolve [[mentions]] in a markdown article",
	Long: `Replace every [[keyword]] or [[keyword|label]] mention with a bold,
numbered reference into a Terms appendix. Mentions that do not resolve are
printed as their plain label and reported on stderr. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().BoolVar(&annotateRaw, "raw", false, "print the annotated markdown instead of rendering it")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cfg)
	if err != nil {
		return err
	}

	src, err := readSource(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	res := article.Annotate(string(src), a.glossary.Resolver)
	for _, miss := range res.Unresolved {
		logger.Logger.Debugw("unresolved mention",
			logger.FieldKeyword, miss.Keyword,
			logger.FieldSource, args[0],
			"line", miss.Line,
		)
	}

	out := res.Markdown
	if !annotateRaw {
		if out, err = a.renderer.Render(res.Markdown); err != nil {
			return err
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if n := len(res.Unresolved); n > 0 {
		warn := pterm.Warning.WithWriter(cmd.ErrOrStderr())
		warn.Printf("%d of %d mentions did not resolve\n", n, n+len(res.Annotations))
		for _, miss := range res.Unresolved {
			warn.Printf("  line %d col %d: [[%s]]\n", miss.Line, miss.Column, miss.Keyword)
		}
	}
	return nil
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithHint(errors.Wrapf(err, "read article %s", path), "pass - to read from stdin")
	}
	return data, nil
}
