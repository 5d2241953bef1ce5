package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shrine-functions/internal/domain"
)

// LoadSeedFile читает JSON-массив святилищ. Записям без id присваивается UUID,
// как это делает документное хранилище при добавлении без ключа.
func LoadSeedFile(path string) ([]*domain.Shrine, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var shrines []*domain.Shrine
	if err := json.Unmarshal(raw, &shrines); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(shrines))
	for i, s := range shrines {
		if s == nil {
			return nil, fmt.Errorf("seed entry %d is null", i)
		}
		if strings.TrimSpace(s.ID) == "" {
			s.ID = uuid.NewString()
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("duplicate shrine id %q in seed file", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return shrines, nil
}
