// Package seed loads the friends a ledger starts with.
package seed

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/iho/splitledger/internal/domain"
)

// File is the on-disk seed format. JSON is accepted as well since it is valid YAML.
//
//	friends:
//	  - id: "118836"
//	    name: Clark
//	    image: https://i.pravatar.cc/48?u=118836
//	    balance: -7
type File struct {
	Friends []Friend `yaml:"friends"`
}

// Friend is one seeded friend.
type Friend struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Image   string `yaml:"image"`
	Balance string `yaml:"balance"`
}

// Load reads path and builds the initial ledger.
// An empty path yields the default friends.
func Load(path string) (domain.Ledger, error) {
	if path == "" {
		return domain.NewLedger(domain.DefaultFriends())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("read seed file: %w", err)
	}

	return Parse(data)
}

// Parse decodes seed data and builds the initial ledger.
func Parse(data []byte) (domain.Ledger, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Ledger{}, fmt.Errorf("decode seed file: %w", err)
	}

	friends := make([]domain.Friend, 0, len(file.Friends))
	for i, f := range file.Friends {
		balance := decimal.Zero
		if f.Balance != "" {
			b, err := decimal.NewFromString(f.Balance)
			if err != nil {
				return domain.Ledger{}, fmt.Errorf("seed friend %d: invalid balance %q: %w", i, f.Balance, err)
			}
			balance = b
		}

		friends = append(friends, domain.Friend{
			ID:      f.ID,
			Name:    f.Name,
			Image:   f.Image,
			Balance: balance,
		})
	}

	ledger, err := domain.NewLedger(friends)
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("seed ledger: %w", err)
	}

	return ledger, nil
}
