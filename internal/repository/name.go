// Package repository provides access to the name catalog and the persisted
// quiz statistics.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

var (
	ErrNameNotFound  = errors.New("name not found")
	ErrInvalidNumber = errors.New("invalid name number")
)

// NameRepository provides read-only access to the 99 Names of Allah. The
// catalog is loaded once from a JSON asset and never mutated afterwards.
type NameRepository struct {
	names []*entities.Name
}

// NewNameRepository loads the catalog from the JSON file at path.
func NewNameRepository(path string) (*NameRepository, error) {
	names, err := get99Names(path)
	if err != nil {
		return nil, err
	}

	return &NameRepository{
		names: names,
	}, nil
}

// GetByNumber retrieves a name by its number (1-99).
func (r *NameRepository) GetByNumber(_ context.Context, number int) (*entities.Name, error) {
	if number < 1 || number > len(r.names) {
		return nil, ErrInvalidNumber
	}

	for _, name := range r.names {
		if name.Number == number {
			return name, nil
		}
	}

	return nil, ErrNameNotFound
}

// GetRandom retrieves a random name.
func (r *NameRepository) GetRandom(_ context.Context) (*entities.Name, error) {
	if len(r.names) == 0 {
		return nil, ErrNameNotFound
	}

	idx := rand.Intn(len(r.names))
	return r.names[idx], nil
}

// GetAll retrieves all names in catalog order.
func (r *NameRepository) GetAll(_ context.Context) ([]*entities.Name, error) {
	return r.names, nil
}

// Search returns the names whose transliteration, meaning or Arabic text
// contains the given term, in either language. Matching is case-insensitive
// for Latin text.
func (r *NameRepository) Search(_ context.Context, term string) ([]*entities.Name, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.names, nil
	}

	lower := strings.ToLower(term)
	var out []*entities.Name
	for _, n := range r.names {
		if strings.Contains(strings.ToLower(n.Transliteration), lower) ||
			strings.Contains(strings.ToLower(n.Meaning), lower) ||
			strings.Contains(n.ArabicName, term) ||
			strings.Contains(strings.ToLower(n.BnTransliteration), lower) ||
			strings.Contains(n.BnMeaning, term) {
			out = append(out, n)
		}
	}

	return out, nil
}

func get99Names(path string) ([]*entities.Name, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Names []*entities.Name `json:"names"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal names JSON: %w", err)
	}

	if len(wrapper.Names) != 99 {
		return nil, fmt.Errorf("expected 99 names, got %d", len(wrapper.Names))
	}

	seen := make(map[int]struct{}, len(wrapper.Names))
	for _, n := range wrapper.Names {
		if n.Number < 1 || n.Number > 99 {
			return nil, fmt.Errorf("name number out of range: %d", n.Number)
		}
		if _, ok := seen[n.Number]; ok {
			return nil, fmt.Errorf("duplicate name number: %d", n.Number)
		}
		seen[n.Number] = struct{}{}
	}

	return wrapper.Names, nil
}
