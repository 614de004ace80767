package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/resweep/internal/ui/output"
	"go.trai.ch/zerr"
)

// TextFormatter renders the human-readable report.
type TextFormatter struct {
	unusedOnly bool
}

// Format writes the report to w.
func (f *TextFormatter) Format(w io.Writer, result *domain.AnalysisResult) error {
	bw := bufio.NewWriter(w)
	out := output.NewWithProfile(bw, output.ColorProfile)

	heading := func(s string) string {
		return out.String(s).Bold().String()
	}

	unused := result.Unused()
	fmt.Fprintln(bw, heading("Unused resources:"))
	if len(unused) == 0 {
		fmt.Fprintln(bw, "  none")
	}
	for _, e := range unused {
		fmt.Fprintf(bw, "  %s\n", out.String(e.Key.String()).Foreground(termenv.ANSIYellow))
	}

	if !f.unusedOnly {
		used := result.Used()
		fmt.Fprintln(bw, heading("Stats of other resources:"))
		if len(used) == 0 {
			fmt.Fprintln(bw, "  none")
		}
		for _, e := range used {
			fmt.Fprintf(bw, "  %s (%d)\n", e.Key, e.Total())
			for _, ref := range e.References {
				fmt.Fprintf(bw, "    %s: %d\n", out.String(ref.FileName).Faint(), ref.Count)
			}
		}
	}

	if len(result.FileErrors) > 0 {
		fmt.Fprintln(bw, heading("Unreadable files:"))
		for _, fe := range result.FileErrors {
			fmt.Fprintf(bw, "  %s: %s\n", fe.Path, errorText(fe.Err))
		}
	}

	fmt.Fprintf(bw, "\n%d of %s unused, %s scanned",
		len(unused), plural(len(result.Entries), "resource"), plural(result.FilesScanned, "file"))
	if n := len(result.FileErrors); n > 0 {
		fmt.Fprintf(bw, ", %s unreadable", plural(n, "file"))
	}
	fmt.Fprintln(bw)

	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
