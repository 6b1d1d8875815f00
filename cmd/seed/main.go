// Command seed writes the starter catalog to BOOKS_PATH (default
// "data/books.json"). Existing reviews in the target file are discarded;
// pass -force to overwrite an existing file.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"bookshelf/internal/entity"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing catalog file")
	flag.Parse()

	path := os.Getenv("BOOKS_PATH")
	if path == "" {
		path = "data/books.json"
	}

	if _, err := os.Stat(path); err == nil && !*force {
		log.Fatalf("catalog %s already exists, use -force to overwrite", path)
	}

	books := starterCatalog()

	raw, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		log.Fatalf("encode catalog: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("create catalog directory: %v", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		log.Fatalf("write catalog: %v", err)
	}

	log.Printf("Wrote %d books to %s", len(books), path)
}

func starterCatalog() []entity.Book {
	return []entity.Book{
		{ISBN: "9780143126560", Title: "The Alchemist", Author: "Paulo Coelho"},
		{ISBN: "9780062315007", Title: "Sapiens: A Brief History of Humankind", Author: "Yuval Noah Harari"},
		{ISBN: "9780451524935", Title: "1984", Author: "George Orwell"},
		{ISBN: "9780747532743", Title: "Harry Potter and the Philosopher's Stone", Author: "J. K. Rowling"},
		{ISBN: "9780061122415", Title: "To Kill a Mockingbird", Author: "Harper Lee"},
		{ISBN: "9780307474278", Title: "The Da Vinci Code", Author: "Dan Brown"},
		{ISBN: "9780316769488", Title: "The Catcher in the Rye", Author: "J. D. Salinger"},
		{ISBN: "9780544003415", Title: "The Lord of the Rings", Author: "J. R. R. Tolkien"},
		{ISBN: "9780141439518", Title: "Pride and Prejudice", Author: "Jane Austen"},
		{ISBN: "9788845292613", Title: "Veronika Decides to Die", Author: "Paulo Coelho"},
	}
}
