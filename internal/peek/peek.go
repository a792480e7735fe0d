// Package peek lets one agent read a bounded, read-only view of sibling
// agents' persisted affective state, for multi-agent deployments that
// want lightweight social awareness without a shared store. It relies on
// a fixed directory convention (<agentsRoot>/<id>/agent/emotion-engine.json)
// rather than a configurable layout.
package peek

import (
	"os"
	"sort"

	"emotion-engine/internal/domain"
	"emotion-engine/internal/persistence"
)

// Result is what a sibling agent last felt from (or about) currentId: its
// agent id plus the latest stimulus recorded against currentId in that
// sibling's agent buckets.
type Result struct {
	ID     string           `json:"id"`
	Latest *domain.Stimulus `json:"latest"`
}

// Peek lists every immediate subdirectory of agentsRoot other than
// currentID, loads each sibling's persisted state, and returns up to
// maxResults {id, latest} summaries. latest is the sibling's agents
// bucket keyed by currentID, falling back to an arbitrary agents bucket
// if currentID was never recorded there. A sibling whose state file is
// missing or unreadable is skipped rather than failing the whole call.
// Results are ordered by sibling directory name for a stable, bounded cap.
func Peek(agentsRoot, currentID string, maxResults int) ([]Result, error) {
	entries, err := os.ReadDir(agentsRoot)
	if err != nil {
		return nil, domain.NewIOError("read agents root", err)
	}

	var ids []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == currentID {
			continue
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)

	var results []Result
	for _, id := range ids {
		if maxResults > 0 && len(results) >= maxResults {
			break
		}
		if !persistence.Exists(agentsRoot, id) {
			continue
		}
		state, err := persistence.Load(agentsRoot, id)
		if err != nil {
			continue
		}
		results = append(results, Result{ID: id, Latest: latestFor(state, currentID)})
	}
	return results, nil
}

// latestFor resolves the "latest stimulus" a sibling state exposes about
// currentID: its agents bucket keyed by currentID if present, otherwise
// the first agents bucket in name order, otherwise nil.
func latestFor(state domain.State, currentID string) *domain.Stimulus {
	if b, ok := state.Agents[currentID]; ok {
		return b.Latest
	}
	if len(state.Agents) == 0 {
		return nil
	}
	keys := make([]string, 0, len(state.Agents))
	for k := range state.Agents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return state.Agents[keys[0]].Latest
}
