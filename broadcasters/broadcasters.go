// Package broadcasters remembers the broadcasters a user has watched, for
// shell completion and fuzzy suggestions.
package broadcasters

import (
	"strings"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/filesystem"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/where"
	"golang.org/x/exp/slices"
)

// Record is a remembered broadcaster.
type Record struct {
	Login       string    `json:"login"`
	Rank        int       `json:"rank"`
	LastWatched time.Time `json:"last_watched"`
}

var cacher = sync.OnceValue(func() *gache.Cache[map[string]*Record] {
	return gache.New[map[string]*Record](&gache.Options{
		Path:       where.Broadcasters(),
		FileSystem: &filesystem.GacheFs{},
	})
})

func load() (map[string]*Record, error) {
	cached, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Remember records a watch of login, raising its rank. Repeated logins are stored once.
func Remember(login string) error {
	login = sanitize(login)
	if login == "" {
		return nil
	}

	records, err := load()
	if err != nil {
		return err
	}

	record, ok := records[login]
	if !ok {
		record = &Record{Login: login}
		records[login] = record
	}
	record.Rank++
	record.LastWatched = time.Now()

	return cacher().Set(records)
}

// All returns every remembered broadcaster, most watched first.
// Ties are broken by the most recent watch.
func All() ([]*Record, error) {
	records, err := load()
	if err != nil {
		return nil, err
	}

	list := lo.Values(records)
	slices.SortFunc(list, func(a, b *Record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return b.LastWatched.Compare(a.LastWatched)
	})
	return list, nil
}

// Suggest returns remembered logins fuzzily matching partial, best ranked first.
// It is empty when suggestions are disabled or the cache cannot be read.
func Suggest(partial string) []string {
	if !viper.GetBool(key.BroadcastersSuggest) {
		return []string{}
	}

	all, err := All()
	if err != nil {
		return []string{}
	}

	partial = sanitize(partial)
	matching := lo.Filter(all, func(r *Record, _ int) bool {
		return fuzzy.Match(partial, r.Login)
	})

	return lo.Map(matching, func(r *Record, _ int) string { return r.Login })
}

// Forget removes login from the cache.
func Forget(login string) error {
	records, err := load()
	if err != nil {
		return err
	}

	delete(records, sanitize(login))
	return cacher().Set(records)
}

func sanitize(login string) string {
	return strings.TrimSpace(strings.ToLower(login))
}
