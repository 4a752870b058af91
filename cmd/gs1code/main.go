// Command gs1code validates GS1 AI data and prints the canonical element
// string a renderer would encode, along with its human-readable
// interpretation.
//
// The input syntax is chosen by shape: data starting with '#' is a raw
// element string, '(' selects bracketed AI syntax, "http://" or "https://"
// selects a GS1 Digital Link URI, and -epc treats the input as a
// hex-encoded SGTIN EPC. Anything else is carried verbatim as a
// symbology-specific payload.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gs1sw/gs1code/config"
	"github.com/gs1sw/gs1code/epc"
	"github.com/gs1sw/gs1code/gs1"
)

func main() {
	cfgPath := flag.String("c", "", "TOML configuration file")
	data := flag.String("d", "", "barcode data (reads the data file when empty)")
	epcMode := flag.Bool("epc", false, "treat the input as a hex-encoded SGTIN EPC")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fatal(err.Error())
		}
	}

	in := *data
	if in == "" {
		var err error
		if in, err = readDataFile(cfg.DataFile); err != nil {
			fatal(err.Error())
		}
	}

	enc := gs1.NewEncoder()
	if err := ingest(enc, in, *epcMode); err != nil {
		fatal(err.Error())
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	fmt.Fprintf(out, "symbology: %s (%s)\n", cfg.Symbology, cfg.Format)
	fmt.Fprintf(out, "data: %s\n", enc.DataStr())
	if hri := enc.HRI(); len(hri) != 0 {
		fmt.Fprintln(out, "HRI:")
		for _, line := range hri {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	for _, x := range enc.ExtractedAIs() {
		fmt.Fprintf(out, "AI %-4s  %-25s %s\n", x.AI(), x.Title(), x.Value)
	}
}

// ingest routes the input to the parser matching its shape.
func ingest(enc *gs1.Encoder, in string, epcMode bool) error {
	if epcMode {
		tag, err := epc.DecodeSGTINString(in)
		if err != nil {
			return err
		}
		if err := tag.ValidateRanges(); err != nil {
			return err
		}
		return enc.SetAIDataStr(tag.AIDataStr())
	}
	switch {
	case strings.HasPrefix(in, "("):
		return enc.SetAIDataStr(in)
	case strings.HasPrefix(in, "http://"), strings.HasPrefix(in, "https://"):
		return enc.SetDLURI(in)
	default:
		return enc.SetDataStr(in)
	}
}

func readDataFile(name string) (string, error) {
	if name == "-" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "gs1code: "+msg)
	os.Exit(1)
}
