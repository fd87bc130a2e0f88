package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Anubhav2007/GuestHouse/internal/model"
)

// GuesthouseStore is the read-only guesthouse directory, loaded once from
// guesthouses.csv. Identifiers are compared as trimmed text regardless of how
// they are stored.
type GuesthouseStore struct {
	guesthouses []model.Guesthouse
	byID        map[string]model.Guesthouse
}

func NewGuesthouseStore(path string) (*GuesthouseStore, error) {
	s := &GuesthouseStore{byID: make(map[string]model.Guesthouse)}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		// An empty directory is tolerated; lookups just miss.
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open guesthouses file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read guesthouses header: %w", err)
	}
	idx := columnIndex(header)

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read guesthouses row: %w", err)
		}

		capacity, _ := strconv.Atoi(strings.TrimSpace(field(row, idx, "capacity")))
		g := model.Guesthouse{
			ID:       strings.TrimSpace(field(row, idx, "id")),
			Name:     field(row, idx, "name"),
			Location: field(row, idx, "location"),
			Capacity: capacity,
		}
		if g.ID == "" {
			continue
		}
		s.guesthouses = append(s.guesthouses, g)
		s.byID[g.ID] = g
	}

	return s, nil
}

func (s *GuesthouseStore) ListAll() []model.Guesthouse {
	out := make([]model.Guesthouse, len(s.guesthouses))
	copy(out, s.guesthouses)
	return out
}

func (s *GuesthouseStore) Get(id string) (model.Guesthouse, bool) {
	g, ok := s.byID[strings.TrimSpace(id)]
	return g, ok
}
