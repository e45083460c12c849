package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/labelstation/internal/labels"
)

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

// Inject puts the operator's prefix into the package marker column of a
// print record and prints the result.
//
// With two arguments (label file, serial) the header and record are taken
// from the label file; otherwise both are prompted for.
func (a *App) Inject(ctx context.Context, args []string) error {
	var (
		header, record string
		err            error
	)

	if len(args) >= 2 {
		header, record, err = a.readLabel(args[0], args[1])
	} else {
		header, record, err = a.promptLabel()
	}
	if err != nil {
		a.logger.Error(ctx, "reading print record failed", "error", err, "code", "VALIDATOR004")
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	out, err := labels.InjectPackageMarker(header, record, a.session)
	if err != nil {
		a.logger.Error(ctx, "package marker injection failed", "error", err, "code", "VALIDATOR003")
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, out)
	return nil
}

func (a *App) readLabel(path, serial string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return labels.ExtractHeaderAndRecord(lines, serial)
}

func (a *App) promptLabel() (string, string, error) {
	header, err := getSimpleText(a.reader, "Header line", a.out)
	if err != nil {
		return "", "", err
	}
	record, err := getSimpleText(a.reader, "Record line", a.out)
	if err != nil {
		return "", "", err
	}
	return header, record, nil
}

// Dump lists the decoded credential file. It is only available in verbose
// mode.
func (a *App) Dump(ctx context.Context) error {
	if !a.config.Verbose {
		fmt.Fprintln(a.out, "dump is only available in verbose mode (-v)")
		return nil
	}
	if err := a.store.Dump(ctx, a.out); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}
	return nil
}
