// Command editdist prints the Levenshtein distance, counted in Unicode
// scalar values, between two text files. With -c it prints the character
// error rate of the first file against the second. Both files must be
// valid UTF-8.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ughe/levscore/editdist"
	"github.com/ughe/levscore/util"
)

func editdistCommand(w io.Writer, srcFilename, dstFilename string, cer bool) error {
	texta, err := util.ReadText(srcFilename)
	if err != nil {
		return err
	}
	textb, err := util.ReadText(dstFilename)
	if err != nil {
		return err
	}
	truth := []rune(textb)
	dist := editdist.Distance([]rune(texta), truth)
	if cer {
		fmt.Fprintf(w, "%.5f\n", editdist.CER(dist, len(truth)))
	} else {
		fmt.Fprintf(w, "%d\n", dist)
	}
	return nil
}

func main() {
	cero := flag.Bool("c", false, "Output character error rate instead of levenshtein dist")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-c] test.txt truth.txt\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	if err := editdistCommand(os.Stdout, flag.Arg(0), flag.Arg(1), *cero); err != nil {
		slog.Error("editdist failed", "err", err)
		os.Exit(1)
	}
}
