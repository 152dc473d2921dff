// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package probe

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Report writes one row per result followed by a summary line.
func Report(w io.Writer, results []Result, useColor bool) error {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if useColor {
		pass.EnableColor()
		fail.EnableColor()
	} else {
		pass.DisableColor()
		fail.DisableColor()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tPROBE\tN\tMAX DEPTH\tELAPSED\tDETAIL")
	var failed int
	for _, r := range results {
		status := pass.Sprint("PASS")
		detail := humanize.Comma(r.Got)
		if !r.OK() {
			failed++
			status = fail.Sprint("FAIL")
			detail = r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			status,
			r.Name,
			humanize.Comma(int64(r.Params.N)),
			humanize.Comma(int64(r.Params.MaxDepth)),
			r.Elapsed.Round(time.Microsecond),
			detail,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := pass.Sprintf("%d passed", len(results)-failed)
	if failed > 0 {
		summary += ", " + fail.Sprintf("%d failed", failed)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
