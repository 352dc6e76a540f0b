package content

import (
	"sort"

	"github.com/edgeup/edgeup-api/internal/entity"
)

// Resolver answers "which blocks should this page render" from an in-memory
// snapshot of authored content, substituting compiled-in defaults for any
// block type the page expects but the store does not carry. It performs no
// I/O; the snapshot is fetched once at startup.
type Resolver struct {
	authored map[string]map[entity.BlockType]entity.ContentBlock

	// onFallback, when set, is invoked every time a default is substituted.
	onFallback func(pageKey string, t entity.BlockType)
}

// NewResolver builds a resolver from the authored-block snapshot. A nil or
// empty snapshot is valid and yields defaults for everything, which is how a
// failed content fetch degrades.
func NewResolver(blocks []entity.ContentBlock, onFallback func(pageKey string, t entity.BlockType)) *Resolver {
	sorted := make([]entity.ContentBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})

	authored := make(map[string]map[entity.BlockType]entity.ContentBlock)
	for _, b := range sorted {
		if b.Payload == nil || !b.Type.Valid() {
			continue
		}
		byType, ok := authored[b.PageKey]
		if !ok {
			byType = make(map[entity.BlockType]entity.ContentBlock)
			authored[b.PageKey] = byType
		}
		// Lowest order index wins when the same type is authored twice.
		if _, exists := byType[b.Type]; !exists {
			byType[b.Type] = b
		}
	}

	return &Resolver{authored: authored, onFallback: onFallback}
}

// Blocks returns one block per requested type, authored content first,
// defaults otherwise. With no explicit types it resolves the full set the
// page's template expects. Callers never get a missing payload for a known
// type, so no error is returned.
func (r *Resolver) Blocks(pageKey string, types ...entity.BlockType) []entity.ContentBlock {
	if len(types) == 0 {
		types = PageTypes(pageKey)
	}

	out := make([]entity.ContentBlock, 0, len(types))
	for _, t := range types {
		if b, ok := r.tryAuthored(pageKey, t); ok {
			out = append(out, b)
			continue
		}
		out = append(out, defaultFor(pageKey, t))
		if r.onFallback != nil {
			r.onFallback(pageKey, t)
		}
	}
	return out
}

func (r *Resolver) tryAuthored(pageKey string, t entity.BlockType) (entity.ContentBlock, bool) {
	byType, ok := r.authored[pageKey]
	if !ok {
		return entity.ContentBlock{}, false
	}
	b, ok := byType[t]
	return b, ok
}
