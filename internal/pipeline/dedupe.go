package pipeline

// Deduplicator tracks upstream IDs seen during a single pipeline run.
// Cross-run overlap is left to the loader's idempotent upsert, so the set is
// deliberately not persisted.
type Deduplicator struct {
	seen map[string]struct{}
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

func (d *Deduplicator) IsDuplicate(id string) bool {
	_, ok := d.seen[id]
	return ok
}

func (d *Deduplicator) Record(id string) {
	d.seen[id] = struct{}{}
}

// Seen returns how many distinct IDs this run has recorded.
func (d *Deduplicator) Seen() int {
	return len(d.seen)
}
