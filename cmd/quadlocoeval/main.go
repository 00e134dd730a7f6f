// Command quadlocoeval runs the quad target detector over a directory
// of PGM images paired with .meapoint ground-truth sidecars, and
// prints a human-readable report of how close each detection landed.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quadloco/internal/quad/eval"
	"quadloco/internal/quad/grid"
	"quadloco/internal/quad/gridops"
	"quadloco/internal/quad/qconfig"
	"quadloco/internal/quaddiag"
	"quadloco/internal/rasterio"
	"quadloco/internal/version"
	"quadloco/pkg/colorutil"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Println("Usage: quadlocoeval <loadDir> [saveDir]")
		os.Exit(1)
	}
	loadDir := os.Args[1]
	saveDir := ""
	if len(os.Args) >= 3 {
		saveDir = os.Args[2]
	}

	fmt.Printf("quadlocoeval %s\n", version.Version)

	cases, err := pairCases(loadDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quadlocoeval: %v\n", err)
		os.Exit(1)
	}
	if len(cases) == 0 {
		fmt.Fprintf(os.Stderr, "quadlocoeval: no .pgm/.meapoint pairs found in %s\n", loadDir)
		os.Exit(1)
	}

	params := qconfig.Default()
	var worstMiss float64
	for _, c := range cases {
		report, err := runCase(c, params, saveDir)
		if err != nil {
			fmt.Printf("%-24s FAILED: %v\n", c.stem, err)
			continue
		}
		fmt.Println(report.String())
		if report.Miss > worstMiss {
			worstMiss = report.Miss
		}
	}

	fmt.Printf("\nworst miss: %.3f px\n", worstMiss)
}

type evalCase struct {
	stem    string
	pgmPath string
	meaPath string
}

func pairCases(loadDir string) ([]evalCase, error) {
	entries, err := os.ReadDir(loadDir)
	if err != nil {
		return nil, fmt.Errorf("enumerating %s: %w", loadDir, err)
	}

	pgmByStem := map[string]string{}
	meaByStem := map[string]string{}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		full := filepath.Join(loadDir, name)
		switch strings.ToLower(ext) {
		case ".pgm":
			pgmByStem[stem] = full
		case ".meapoint":
			meaByStem[stem] = full
		}
	}

	var stems []string
	for stem := range pgmByStem {
		if _, ok := meaByStem[stem]; ok {
			stems = append(stems, stem)
		}
	}
	sort.Strings(stems)

	cases := make([]evalCase, 0, len(stems))
	for _, stem := range stems {
		cases = append(cases, evalCase{stem: stem, pgmPath: pgmByStem[stem], meaPath: meaByStem[stem]})
	}
	return cases, nil
}

type caseReport struct {
	stem       string
	numFound   int
	bestCenter string
	Miss       float64
}

func (r caseReport) String() string {
	return fmt.Sprintf("%-24s candidates=%-3d best=%-20s miss=%.3f px", r.stem, r.numFound, r.bestCenter, r.Miss)
}

func runCase(c evalCase, params qconfig.Params, saveDir string) (caseReport, error) {
	byteGrid, err := rasterio.ReadPGMFile(c.pgmPath)
	if err != nil {
		return caseReport{}, err
	}
	expected, err := rasterio.ReadMeaPoint(c.meaPath)
	if err != nil {
		return caseReport{}, err
	}

	floatGrid := gridops.ByteToFloat(byteGrid)
	diag := eval.Run(floatGrid, params)
	candidates := diag.Candidates

	if saveDir != "" {
		if err := saveDiagnostics(saveDir, c.stem, floatGrid, diag); err != nil {
			log.Printf("quadlocoeval: %s: %v", c.stem, err)
		}
	}

	report := caseReport{stem: c.stem, numFound: len(candidates)}
	if len(candidates) == 0 {
		report.bestCenter = "none"
		report.Miss = math.Inf(1)
		return report, nil
	}

	best := candidates[0]
	report.bestCenter = fmt.Sprintf("(%.2f,%.2f)", best.Item.Center.Row, best.Item.Center.Col)
	dr := best.Item.Center.Row - expected.Row
	dc := best.Item.Center.Col - expected.Col
	report.Miss = math.Sqrt(dr*dr + dc*dc)

	return report, nil
}

func saveDiagnostics(saveDir, stem string, floatGrid *grid.Grid[float64], diag eval.Diagnostics) error {
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return err
	}

	dump := quaddiag.NewDump(floatGrid)
	defer dump.Close()

	bg := averageGray(floatGrid)
	dump.DrawEdgels(diag.Edgels, colorutil.Yellow)
	dump.DrawRays(diag.Groups, colorutil.Cyan)
	dump.DrawCandidates(diag.Candidates, colorutil.ContrastColor(bg))

	return dump.Save(filepath.Join(saveDir, stem+".png"))
}

func averageGray(floatGrid *grid.Grid[float64]) color.RGBA {
	raw := floatGrid.Raw()
	sum := 0.0
	for _, v := range raw {
		sum += v
	}
	mean := sum / float64(len(raw))
	if mean < 0 {
		mean = 0
	}
	if mean > 255 {
		mean = 255
	}
	level := uint8(mean)
	return color.RGBA{R: level, G: level, B: level, A: 255}
}
