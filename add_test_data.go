//go:build ignore
// +build ignore

// Helper script to add sample todos to the database
// Run with: go run add_test_data.go [-db path]

package main

import (
	"context"
	"flag"
	"log"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/database"
)

func main() {
	dbPath := flag.String("db", "", "database path (default ~/.todo/todos.db)")
	flag.Parse()

	ctx := context.Background()

	application, err := app.Open(ctx, database.Options{Path: *dbPath})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	samples := []struct {
		text string
		done bool
	}{
		{"Buy oat milk", false},
		{"Pay rent", true},
		{"Call the landlord about the heater", false},
		{"Renew library books", true},
		{"Book dentist appointment", false},
	}

	for _, s := range samples {
		todo, err := application.TodoService.CreateTodo(ctx, s.text)
		if err != nil {
			log.Fatalf("Failed to create todo %q: %v", s.text, err)
		}
		if s.done {
			if err := application.TodoService.SetDone(ctx, todo.ID, true); err != nil {
				log.Fatalf("Failed to finish todo %d: %v", todo.ID, err)
			}
		}
		log.Printf("Created todo %d: %s", todo.ID, todo.Text)
	}

	log.Println("Test data added successfully")
}
