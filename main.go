package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ajithyaasaf/solar-quotation/services"
)

// QuotationRequest is the JSON envelope the CLI consumes: the project
// configuration, the customer record and optional quotation metadata.
type QuotationRequest struct {
	Configuration services.ProjectConfiguration `json:"configuration"`
	Customer      services.Customer             `json:"customer"`
	Meta          services.QuotationMeta        `json:"meta"`
}

func main() {
	var (
		inputPath = flag.String("input", "", "quotation request JSON file (reads stdin when empty)")
		outDir    = flag.String("out", ".", "directory generated documents are written to")
		format    = flag.String("format", "json", "output format: json, pdf, xlsx or all")
		sequence  = flag.Int("seq", 1, "sequence used when the request carries no quotation number")
	)
	flag.Parse()

	req, err := readRequest(*inputPath)
	if err != nil {
		log.Fatal(err)
	}

	// Validation findings are advisory: report them, then generate anyway so
	// a draft quotation can still be produced from partial data.
	for _, fe := range services.ValidateQuotationRequest(req.Configuration, req.Customer) {
		log.Printf("Warning: %s: %s", fe.Field, fe.Message)
	}

	now := time.Now()
	if req.Meta.QuotationNumber == "" {
		req.Meta.QuotationNumber = services.FormatQuotationNumber(services.FiscalYear(now), *sequence)
	}

	quotation, warnings, err := services.AssembleQuotation(req.Configuration, req.Customer, req.Meta, now)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range warnings {
		log.Printf("Warning: %s", w)
	}

	if err := writeOutputs(quotation, *outDir, *format); err != nil {
		log.Fatal(err)
	}
}

func readRequest(path string) (QuotationRequest, error) {
	var req QuotationRequest

	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request: %w", err)
	}
	return req, nil
}

func writeOutputs(quotation *services.QuotationTemplate, outDir, format string) error {
	switch format {
	case "json", "pdf", "xlsx", "all":
	default:
		return fmt.Errorf("unknown output format %q (want json, pdf, xlsx or all)", format)
	}
	want := func(f string) bool { return format == "all" || format == f }

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	base := filepath.Join(outDir, fileStem(quotation.Header.QuotationNumber))

	if want("json") {
		data, err := json.MarshalIndent(quotation, "", "  ")
		if err != nil {
			return fmt.Errorf("encode quotation: %w", err)
		}
		if err := writeFile(base+".json", data); err != nil {
			return err
		}
	}
	if want("pdf") {
		data, err := services.GeneratePDF(quotation)
		if err != nil {
			return fmt.Errorf("generate PDF: %w", err)
		}
		if err := writeFile(base+".pdf", data); err != nil {
			return err
		}
	}
	if want("xlsx") {
		data, err := services.GenerateExcel(quotation)
		if err != nil {
			return fmt.Errorf("generate Excel: %w", err)
		}
		if err := writeFile(base+".xlsx", data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("Wrote %s", path)
	return nil
}

// fileStem turns a quotation number into a safe file name stem.
func fileStem(number string) string {
	stem := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '-'
		}
		return r
	}, number)
	if stem == "" {
		stem = "quotation"
	}
	return stem
}
