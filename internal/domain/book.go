package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookCategory classifies a book's subject area. The set is closed.
type BookCategory string

const (
	CategoryComputer BookCategory = "COMPUTER"
	CategoryEconomy  BookCategory = "ECONOMY"
	CategorySociety  BookCategory = "SOCIETY"
	CategoryLanguage BookCategory = "LANGUAGE"
	CategoryScience  BookCategory = "SCIENCE"
)

var bookCategories = map[BookCategory]struct{}{
	CategoryComputer: {},
	CategoryEconomy:  {},
	CategorySociety:  {},
	CategoryLanguage: {},
	CategoryScience:  {},
}

// ParseBookCategory validates a raw category string against the closed set.
func ParseBookCategory(raw string) (BookCategory, error) {
	category := BookCategory(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := bookCategories[category]; !ok {
		return "", fmt.Errorf("unknown book category %q", raw)
	}
	return category, nil
}

// Book is a catalog entry. Multiple books may share a name.
type Book struct {
	ID        int64
	Name      string
	Category  BookCategory
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook constructs a catalog entry, rejecting blank names.
func NewBook(name string, category BookCategory) (*Book, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("book name must not be blank")
	}
	if _, ok := bookCategories[category]; !ok {
		return nil, fmt.Errorf("unknown book category %q", category)
	}
	return &Book{Name: name, Category: category}, nil
}
