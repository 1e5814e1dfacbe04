package pool

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/spigell/hh-planner/internal/hiring"
)

// Entry is a candidate as written in the configuration file.
type Entry struct {
	ID      string  `mapstructure:"id" json:"id,omitempty"`
	Name    string  `mapstructure:"name" json:"name,omitempty"`
	PayRate float64 `mapstructure:"pay-rate" json:"pay-rate"`
	Hours   []int   `mapstructure:"hours" json:"hours"`
}

// Decode builds a candidate list from raw configuration data, usually the value of the pool key.
// Entries without an id get a random one.
func Decode(raw any) (*hiring.CandidateList, error) {
	if raw == nil {
		return hiring.NewCandidateList(), nil
	}

	var entries []Entry
	cfg := &mapstructure.DecoderConfig{
		Result:           &entries,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding pool: %w", err)
	}

	return FromEntries(entries)
}

// FromEntries converts entries to candidates, keeping their order.
func FromEntries(entries []Entry) (*hiring.CandidateList, error) {
	list := hiring.NewCandidateList()
	seen := make(map[string]struct{}, len(entries))

	for i, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("pool entry %d: duplicate candidate id %q", i, id)
		}
		seen[id] = struct{}{}

		c, err := hiring.NewCandidate(id, strings.TrimSpace(e.Name), e.PayRate, e.Hours)
		if err != nil {
			return nil, fmt.Errorf("pool entry %d: %w", i, err)
		}
		list.Add(c)
	}

	return list, nil
}

// GenerateParams controls random pool generation.
type GenerateParams struct {
	// Hours is the number of hours candidates may cover: 0 to Hours-1.
	Hours int
	// Candidates is the size of the pool.
	Candidates int
	// MaxPay is the highest pay rate. Pay rates are whole numbers from 1 to MaxPay.
	MaxPay int
}

// Generate returns a random pool in which every candidate covers at least one hour.
func Generate(rng *rand.Rand, params GenerateParams) (*hiring.CandidateList, error) {
	if params.Hours <= 0 {
		return nil, errors.New("number of hours must be positive")
	}
	if params.Candidates < 0 {
		return nil, errors.New("number of candidates must not be negative")
	}
	if params.MaxPay <= 0 {
		params.MaxPay = 1
	}

	list := hiring.NewCandidateList()
	for i := 0; i < params.Candidates; i++ {
		hours := make([]int, 0, params.Hours)
		for h := 0; h < params.Hours; h++ {
			if rng.Intn(2) == 1 {
				hours = append(hours, h)
			}
		}
		if len(hours) == 0 {
			hours = append(hours, rng.Intn(params.Hours))
		}

		c, err := hiring.NewCandidate(uuid.NewString(), fmt.Sprintf("candidate-%d", i+1), float64(rng.Intn(params.MaxPay)+1), hours)
		if err != nil {
			return nil, err
		}
		list.Add(c)
	}

	return list, nil
}
