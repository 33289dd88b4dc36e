package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"library/internal/catalog"
	"library/internal/menu"
	"library/internal/models"
	"library/internal/storage/stubs"
)

// Development entry point: runs the menu against a seeded in-memory
// store, so nothing touches the data files on disk.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	store := stubs.NewMockStore()
	store.Seed(
		[]*models.Book{
			{ID: 1, Name: "Dune", ISBN: "9780441172719", Copies: []models.Copy{{Index: 1}, {Index: 2}}},
			{ID: 2, Name: "Foundation", ISBN: "9780553293357", Copies: []models.Copy{{Index: 1}}},
		},
		[]*models.Author{
			{ID: 1, Name: "Frank Herbert"},
			{ID: 2, Name: "Isaac Asimov"},
		},
		[]*models.Student{
			{ID: 1, Name: "Ada"},
			{ID: 2, Name: "Grace", PenaltyDays: 3},
		},
		nil,
		[]models.BookAuthorLink{
			{BookID: 1, AuthorID: 1},
			{BookID: 2, AuthorID: 2},
		},
	)

	ctx := context.Background()
	cat := catalog.New(store, logger)
	if err := cat.Load(ctx); err != nil {
		log.Fatalf("Failed to load seeded catalog: %v", err)
	}

	m := menu.New(cat, os.Stdin, os.Stdout, logger)
	if err := m.Run(); err != nil {
		log.Fatalf("Menu session failed: %v", err)
	}

	if err := cat.Save(ctx); err != nil {
		log.Fatalf("Failed to save catalog: %v", err)
	}
	if err := cat.Close(); err != nil {
		log.Fatalf("Failed to close store: %v", err)
	}
	logger.Info("Dev session finished")
	_ = logger.Sync()
}
