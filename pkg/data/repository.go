package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const (
	MangasKey = "savedMangas"
	AccentKey = "selectedColorKey"
)

type Repository struct {
	store *Store
}

func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// Open initialises the database and wraps it in a Repository.
func Open(driver, path string) (*Repository, error) {
	db, err := InitDB(driver, path)
	if err != nil {
		return nil, err
	}
	return NewRepository(NewStore(db)), nil
}

// LoadMangas returns the stored collection. A blob that no longer decodes is
// logged and treated as an empty library.
func (r *Repository) LoadMangas(ctx context.Context) ([]*Manga, error) {
	raw, ok, err := r.store.Get(ctx, MangasKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*Manga{}, nil
	}

	var mangas []*Manga
	if err := json.Unmarshal(raw, &mangas); err != nil {
		log.Printf("[data] discarding undecodable %s blob: %v", MangasKey, err)
		return []*Manga{}, nil
	}
	if mangas == nil {
		mangas = []*Manga{}
	}
	return mangas, nil
}

func (r *Repository) SaveMangas(ctx context.Context, mangas []*Manga) error {
	if mangas == nil {
		mangas = []*Manga{}
	}
	raw, err := json.Marshal(mangas)
	if err != nil {
		return fmt.Errorf("encode mangas: %w", err)
	}
	return r.store.Set(ctx, MangasKey, raw)
}

// LoadAccent returns the saved accent colour, or "" if none was saved.
func (r *Repository) LoadAccent(ctx context.Context) (string, error) {
	raw, ok, err := r.store.Get(ctx, AccentKey)
	if err != nil || !ok {
		return "", err
	}
	return string(raw), nil
}

func (r *Repository) SaveAccent(ctx context.Context, color string) error {
	return r.store.Set(ctx, AccentKey, []byte(color))
}

func (r *Repository) Close() error {
	return r.store.Close()
}
