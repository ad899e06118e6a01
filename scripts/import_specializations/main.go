// Command import_specializations loads a program list into a university from
// an .xlsx workbook or a text file with one program per line.
//
//	go run ./scripts/import_specializations -file programs.xlsx -university cairo-university
//	go run ./scripts/import_specializations -file programs.txt -dry-run
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mroshb/edu_admissions/internal/config"
	"github.com/mroshb/edu_admissions/internal/database"
	"github.com/mroshb/edu_admissions/internal/ingest"
	"github.com/mroshb/edu_admissions/internal/repositories"
	"github.com/mroshb/edu_admissions/internal/services"
	"github.com/mroshb/edu_admissions/pkg/logger"
)

func main() {
	file := flag.String("file", "", "path to an .xlsx workbook or a text file")
	slug := flag.String("university", "", "slug of the university to import into")
	dryRun := flag.Bool("dry-run", false, "print the parse report without writing")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	text, err := readSource(*file)
	if err != nil {
		log.Fatal(err)
	}

	if *dryRun {
		printReport(ingest.ParseBulkReport(text))
		return
	}

	if *slug == "" {
		log.Fatal("-university is required unless -dry-run is set")
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}
	logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	ctx := context.Background()
	university, err := repositories.NewUniversityRepository(db).GetBySlug(ctx, strings.ToLower(*slug))
	if err != nil {
		log.Fatalf("university %q: %v", *slug, err)
	}

	svc := services.NewSpecializationService(repositories.NewSpecializationRepository(db), nil)
	result, err := svc.AddFromText(ctx, university.ID, text)
	if err != nil {
		log.Fatal("import failed:", err)
	}

	fmt.Printf("Imported %d specializations into %s, skipped %d incomplete rows.\n",
		len(result.Created), university.NameEN, result.Skipped)
}

func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ingest.WorkbookText(f)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printReport(report ingest.Report) {
	for _, line := range report.Lines {
		status := "ok"
		if !line.Eligible {
			status = "skip (missing " + strings.Join(line.Missing, ", ") + ")"
		}
		fmt.Printf("%4d  %-40s  %s | %s | %s | %s  %s\n",
			line.Line, truncate(line.Source, 40),
			line.Draft.NameAR, line.Draft.NameEN, line.Draft.Duration, line.Draft.Tuition,
			status)
	}
	fmt.Printf("\n%d eligible, %d dropped\n", report.Eligible, report.Dropped)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
