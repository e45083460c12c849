// Command szvenc converts plaintext credential lines into the SZV.dat
// format read by the label station.
//
// Each input line holds the token and the attribute list separated by a
// tab:
//
//	0012345<TAB>x,y,Novák,Jan,PRE001
//
// and becomes one hex line on stdout. With -d the direction is reversed,
// which is handy for checking an existing file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/labelstation/internal/szv"
)

func main() {
	decode := flag.Bool("d", false, "decode SZV.dat lines instead of encoding")
	flag.Parse()

	var err error
	if *decode {
		err = decodeLines(os.Stdin, os.Stdout)
	} else {
		err = encodeLines(os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func encodeLines(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		out, err := szv.EncodeHexLine(strings.Split(text, "\t"), nil)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return sc.Err()
}

func decodeLines(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		fields, err := szv.DecodeHexLine(sc.Text(), nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
			continue
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return sc.Err()
}
