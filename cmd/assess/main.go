package main

// One-shot assessment from the command line:
//   go run ./cmd/assess -input sample.json
//   cat sample.json | go run ./cmd/assess -format csv

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"water-backend/internal/shared/config"
	"water-backend/water/artifact"
	"water-backend/water/param"
	"water-backend/water/pipeline"
)

func main() {
	inputPath := flag.String("input", "-", "JSON parameter set file, or - for stdin")
	format := flag.String("format", "json", "output format: json or csv")
	flag.Parse()

	cfg := config.Load()

	model, err := artifact.Load(cfg.ArtifactPath)
	if err != nil {
		log.Fatalf("load model artifact: %v", err)
	}
	limits, err := pipeline.LoadThresholds(cfg.ThresholdsPath)
	if err != nil {
		log.Fatalf("load thresholds: %v", err)
	}

	set, err := readSet(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	engine := pipeline.NewEngine(model, limits)
	assessment, err := engine.Assess(set)
	if err != nil {
		log.Fatalf("assess: %v", err)
	}

	switch *format {
	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write(pipeline.ExportHeaders()); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		if err := w.Write(assessment.ExportRow()); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			log.Fatalf("write csv: %v", err)
		}
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessment); err != nil {
			log.Fatalf("write json: %v", err)
		}
	}
}

func readSet(path string) (param.Set, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return param.Set{}, err
		}
		defer f.Close()
		reader = f
	}
	var set param.Set
	if err := json.NewDecoder(reader).Decode(&set); err != nil {
		return param.Set{}, err
	}
	return set, nil
}
