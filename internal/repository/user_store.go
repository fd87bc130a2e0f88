package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Anubhav2007/GuestHouse/internal/model"
)

// UserStore is the read-only user directory behind login, loaded once from
// users.csv (columns: username, password, role).
type UserStore struct {
	byUsername map[string]model.User
}

func NewUserStore(path string) (*UserStore, error) {
	s := &UserStore{byUsername: make(map[string]model.User)}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users header: %w", err)
	}
	idx := columnIndex(header)

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read users row: %w", err)
		}

		u := model.User{
			Username: strings.TrimSpace(field(row, idx, "username")),
			Password: field(row, idx, "password"),
			Role:     strings.TrimSpace(field(row, idx, "role")),
		}
		if u.Username == "" {
			continue
		}
		if u.Role == "" {
			u.Role = model.RoleUser
		}
		s.byUsername[u.Username] = u
	}

	return s, nil
}

func (s *UserStore) Get(username string) (model.User, bool) {
	u, ok := s.byUsername[username]
	return u, ok
}
