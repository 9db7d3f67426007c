package branch

import (
	"fmt"
	"sort"
	"strings"

	"branchstore/pkg/domain"
)

// reduceState folds the mutation log, left to right, over the given branch
// state. The input state is never written to; each record transforms the
// running copy. Create allocation reads the running sequence, so several
// queued creates yield distinct sequential ids. Update and delete skip ids
// absent from the running state; unrecognized record types are ignored.
func reduceState(state domain.BranchState, log []domain.Mutation, schema domain.Schema) domain.BranchState {
	next := state.Clone()
	if next.IDs == nil {
		next.IDs = []domain.ID{}
	}
	if next.Attributes == nil {
		next.Attributes = map[domain.ID]domain.Attributes{}
	}
	for _, record := range log {
		switch record := record.(type) {
		case domain.CreateMutation:
			id := nextID(next.IDs, schema.Origin)
			attrs := record.Attributes()
			if attrs == nil {
				attrs = domain.Attributes{}
			}
			next.IDs = append(next.IDs, id)
			next.Attributes[id] = attrs
		case domain.UpdateMutation:
			updater := record.Updater()
			if updater == nil {
				continue
			}
			for _, id := range record.IDs() {
				current, ok := next.Attributes[id]
				if !ok {
					continue
				}
				full := domain.FullEntity{ID: id, Attributes: current.Clone()}
				updated := updater.Apply(current, full)
				if updated == nil {
					updated = domain.Attributes{}
				}
				next.Attributes[id] = updated
			}
		case domain.DeleteMutation:
			for _, id := range record.IDs() {
				if _, ok := next.Attributes[id]; !ok {
					continue
				}
				delete(next.Attributes, id)
				next.IDs = removeID(next.IDs, id)
			}
		case domain.ReorderMutation:
			next.IDs = sortedIDs(next, record.SortKeys(), schema)
		}
	}
	return next
}

// nextID returns one greater than the maximum id in the sequence, or the
// origin when the sequence is empty.
func nextID(ids []domain.ID, origin domain.ID) domain.ID {
	if len(ids) == 0 {
		return origin
	}
	max := ids[0]
	for _, id := range ids[1:] {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func removeID(ids []domain.ID, target domain.ID) []domain.ID {
	kept := ids[:0]
	for _, id := range ids {
		if id != target {
			kept = append(kept, id)
		}
	}
	return kept
}

// sortedIDs re-sorts the id sequence by the full-entity values of the sort
// keys, stable and ascending, keys applied left to right as tie-breakers.
func sortedIDs(state domain.BranchState, sortKeys []string, schema domain.Schema) []domain.ID {
	ids := append([]domain.ID(nil), state.IDs...)
	sort.SliceStable(ids, func(i, j int) bool {
		a := domain.FullEntity{ID: ids[i], Attributes: state.Attributes[ids[i]]}
		b := domain.FullEntity{ID: ids[j], Attributes: state.Attributes[ids[j]]}
		for _, key := range sortKeys {
			av, _ := a.Get(schema, key)
			bv, _ := b.Get(schema, key)
			if c := compareValues(av, bv); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return ids
}

// compareValues orders attribute values of arbitrary dynamic type. Values of
// different kinds order by kind rank (nil, bool, number, string, other);
// within a kind, natural ordering applies, falling back to the printed form.
func compareValues(a, b any) int {
	ra, rb := valueRank(a), valueRank(b)
	if ra != rb {
		return compareInts(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		av, bv := a.(bool), b.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case rankNumber:
		av, _ := toFloat(a)
		bv, _ := toFloat(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case rankString:
		return strings.Compare(a.(string), b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func valueRank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case string:
		return rankString
	default:
		if _, ok := toFloat(v); ok {
			return rankNumber
		}
		return rankOther
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case domain.ID:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
