// Package merge implements IndexMerger: combining several ModuleIndex
// instances under a priority scheme into one resolved index.
package merge

import (
	"sort"

	"modulemd/index"
	"modulemd/mderrors"
)

// IndexMerger accumulates indexes under integer priorities (0-1000,
// higher wins) and resolves them into a single index.
type IndexMerger struct {
	byPriority map[int][]*index.Index
}

// New returns an empty IndexMerger.
func New() *IndexMerger {
	return &IndexMerger{byPriority: map[int][]*index.Index{}}
}

// AssociateIndex registers idx at priority, which must be in [0, 1000].
func (merger *IndexMerger) AssociateIndex(idx *index.Index, priority int) error {
	if priority < 0 || priority > 1000 {
		return mderrors.Newf(mderrors.PriorityOutOfRange, "priority %d out of range [0, 1000]", priority)
	}
	merger.byPriority[priority] = append(merger.byPriority[priority], idx)
	return nil
}

// Resolve merges every associated index into one, ascending by
// priority: within a level, indexes merge with override=false; each
// resulting level then merges into the running result with
// override=true. The merger's internal state is undefined after this
// call; discard it.
func (merger *IndexMerger) Resolve(strictDefaults bool) (*index.Index, error) {
	if len(merger.byPriority) == 0 {
		return nil, mderrors.New(mderrors.NothingToResolve, "no indexes associated with this merger")
	}

	priorities := make([]int, 0, len(merger.byPriority))
	for p := range merger.byPriority {
		priorities = append(priorities, p)
	}
	sort.Ints(priorities)

	final := index.New()
	for _, p := range priorities {
		level := index.New()
		for _, idx := range merger.byPriority[p] {
			if err := mergeInto(level, idx, false, strictDefaults); err != nil {
				return nil, err
			}
		}
		if err := mergeInto(final, level, true, strictDefaults); err != nil {
			return nil, err
		}
	}
	return final, nil
}
