package routing

import (
	"fmt"
	"sort"
	"time"

	"github.com/dd0wney/cluso-netpath/pkg/logging"
)

// AllPairs computes the optimal route for every unordered pair of
// known hosts, keyed "src->dst" with host identifiers in sorted order
// so the key set is deterministic across runs.
//
// Cost is O(H^2) optimal-route queries with no cross-call caching;
// every pair recomputes from scratch. Callers with large host tables
// should budget accordingly or query pairs individually.
func (r *Resolver) AllPairs() map[string]Route {
	started := time.Now()

	ids := r.snap.HostIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	routes := make(map[string]Route, len(ids)*(len(ids)-1)/2)
	for i, src := range ids {
		for _, dst := range ids[i+1:] {
			key := fmt.Sprintf("%s->%s", src, dst)
			routes[key] = r.OptimalRoute(src, dst)
		}
	}

	r.logger.Info("all-pairs routes computed",
		logging.Int("hosts", len(ids)),
		logging.Int("pairs", len(routes)),
		logging.Latency(time.Since(started)))

	return routes
}
