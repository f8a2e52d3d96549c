// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package keywords

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/store"
)

// Discovery thresholds.
const (
	// MinFrequency is the corpus-wide floor for candidate words.
	MinFrequency = 5
	// MinCooccurrence is the per-seed floor for candidate words.
	MinCooccurrence = 3
	// MaxDiscovered caps the number of entries written per run.
	MaxDiscovered = 30
)

// defaultSeeds are known domain terms whose neighborhoods the discovery
// pass mines for new vocabulary.
var defaultSeeds = []string{
	"feishu", "lark", "bitable", "oauth", "chrome", "browser", "cdp",
	"headless", "playwright", "automation", "calendar", "gmail", "api",
}

// Discovery mines the index for domain vocabulary. Words that co-occur
// with seed terms far more often than chance (PMI) become dictionary
// entries, each recording which seeds it clustered with.
type Discovery struct {
	index  store.IndexStore
	dict   store.DictionaryRepository
	seeds  []string
	logger *slog.Logger
}

// DiscoveryOption configures a Discovery.
type DiscoveryOption func(*Discovery)

// WithSeeds replaces the default seed terms.
func WithSeeds(seeds []string) DiscoveryOption {
	return func(d *Discovery) {
		d.seeds = seeds
	}
}

// WithDiscoveryLogger sets the logger.
func WithDiscoveryLogger(logger *slog.Logger) DiscoveryOption {
	return func(d *Discovery) {
		d.logger = logger
	}
}

// NewDiscovery creates a Discovery over the given index and dictionary.
func NewDiscovery(index store.IndexStore, dict store.DictionaryRepository, opts ...DiscoveryOption) *Discovery {
	d := &Discovery{
		index:  index,
		dict:   dict,
		seeds:  defaultSeeds,
		logger: slog.Default().With("component", "keyword-discovery"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type candidate struct {
	word  string
	score float64
	seeds map[string]bool
}

// Run performs one discovery pass and writes the top candidates to the
// dictionary. Returns the number of entries written.
func (d *Discovery) Run(ctx context.Context) (int, error) {
	globalCounts := make(map[string]int)
	cooccurrence := make(map[string]map[string]int)
	totalWords := 0

	err := d.index.Scan(ctx, func(r *core.Row) error {
		text := strings.ToLower(r.Text)
		words := wordPattern.FindAllString(text, -1)
		for _, w := range words {
			globalCounts[w]++
			totalWords++
		}

		var matched []string
		for _, seed := range d.seeds {
			if strings.Contains(text, seed) {
				matched = append(matched, seed)
			}
		}
		if len(matched) == 0 {
			return nil
		}

		// Each distinct word counts once per message.
		distinct := make(map[string]bool, len(words))
		for _, w := range words {
			distinct[w] = true
		}
		for _, seed := range matched {
			counts := cooccurrence[seed]
			if counts == nil {
				counts = make(map[string]int)
				cooccurrence[seed] = counts
			}
			for w := range distinct {
				if w != seed {
					counts[w]++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	seedSet := make(map[string]bool, len(d.seeds))
	for _, s := range d.seeds {
		seedSet[s] = true
	}

	candidates := make(map[string]*candidate)
	for seed, counts := range cooccurrence {
		seedTotal := 0
		for _, c := range counts {
			seedTotal += c
		}
		for word, count := range counts {
			if count < MinCooccurrence {
				continue
			}
			if discoveryStopwords[word] || seedSet[word] {
				continue
			}
			globalFreq := globalCounts[word]
			if globalFreq < MinFrequency {
				continue
			}

			// PMI: how much more likely is this word near the seed
			// than in the corpus at large.
			pWordGivenSeed := float64(count) / math.Max(float64(seedTotal), 1)
			pWord := float64(globalFreq) / math.Max(float64(totalWords), 1)
			pmi := 0.0
			if pWord > 0 && pWordGivenSeed > pWord {
				pmi = math.Log2(pWordGivenSeed / pWord)
			}

			// Words this frequent with no stopword hit are likely
			// project names or domain jargon.
			boost := 2.0
			if globalFreq >= 10 {
				boost = 8.0
			}

			score := float64(count) * (1 + pmi) * boost

			c := candidates[word]
			if c == nil {
				c = &candidate{word: word, seeds: make(map[string]bool)}
				candidates[word] = c
			}
			c.score += score
			c.seeds[seed] = true
		}
	}

	ranked := make([]*candidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].word < ranked[j].word
	})
	if len(ranked) > MaxDiscovered {
		ranked = ranked[:MaxDiscovered]
	}

	entries := make([]*core.DictionaryEntry, len(ranked))
	for i, c := range ranked {
		related := make([]string, 0, len(c.seeds))
		for s := range c.seeds {
			related = append(related, s)
		}
		sort.Strings(related)
		entries[i] = &core.DictionaryEntry{
			Term:    c.word,
			Related: related,
		}
	}

	if len(entries) > 0 {
		if err := d.dict.PutEntries(ctx, entries...); err != nil {
			return 0, err
		}
	}

	d.logger.Info("discovery pass complete",
		"candidates", len(candidates), "written", len(entries))
	return len(entries), nil
}
