package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ggmap/internal/config"
	"ggmap/internal/models"
	"ggmap/internal/repository"
	"ggmap/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	file := flag.String("file", "", "Path to a map JSON file to import")
	dir := flag.String("dir", "", "Directory of map JSON files to import")
	flag.Parse()

	if *file == "" && *dir == "" {
		fmt.Println("Error: --file or --dir flag is required")
		os.Exit(1)
	}

	paths, err := collectPaths(*file, *dir)
	if err != nil {
		fmt.Printf("Error collecting files: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting import of %d file(s)\n", len(paths))

	docs, err := loadDocuments(paths)
	if err != nil {
		fmt.Printf("Error loading documents: %v\n", err)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure table exists
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Insert documents
	if err := repo.UpsertMapDocuments(ctx, docs); err != nil {
		fmt.Printf("Error inserting documents: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, repo, docs); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d map document(s)\n", len(docs))
}

func collectPaths(file, dir string) ([]string, error) {
	var paths []string
	if file != "" {
		paths = append(paths, file)
	}
	if dir != "" {
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no map files found")
	}
	return paths, nil
}

func loadDocuments(paths []string) ([]models.MapDocument, error) {
	docs := make([]models.MapDocument, 0, len(paths))
	for _, path := range paths {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		slug := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if !service.ValidSlug(slug) {
			return nil, fmt.Errorf("invalid slug %q derived from %s", slug, path)
		}

		if _, err := models.DecodeMapConfig(body); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		docs = append(docs, models.MapDocument{Slug: slug, Title: slug, Body: body})
	}
	return docs, nil
}

func verifyImport(ctx context.Context, repo *repository.Repository, docs []models.MapDocument) error {
	for _, doc := range docs {
		stored, err := repo.GetMapDocument(ctx, doc.Slug)
		if err != nil {
			return fmt.Errorf("failed to read back %q: %w", doc.Slug, err)
		}
		if stored.Title != doc.Title {
			return fmt.Errorf("title mismatch for %q: expected %q, got %q", doc.Slug, doc.Title, stored.Title)
		}
	}
	return nil
}
