package services

// ReconcileImages computes the outcome of an image edit.
//
// kept is the list of previously persisted URLs the user chose to keep, in the
// order the user submitted them. Entries that were never persisted, and
// duplicates, are dropped so a client cannot inject foreign URLs.
//
// Returns:
//   - final: kept ++ uploaded, the list to persist
//   - removed: persisted URLs not kept, in persisted order, to delete from storage
//
// Example:
//
//	final, removed := ReconcileImages([]string{"a", "b", "c"}, []string{"a", "c"}, []string{"d"})
//	// final = [a c d], removed = [b]
func ReconcileImages(persisted, kept, uploaded []string) ([]string, []string) {
	persistedSet := make(map[string]struct{}, len(persisted))
	for _, url := range persisted {
		persistedSet[url] = struct{}{}
	}

	keptSet := make(map[string]struct{}, len(kept))
	final := make([]string, 0, len(kept)+len(uploaded))
	for _, url := range kept {
		if _, ok := persistedSet[url]; !ok {
			continue
		}
		if _, dup := keptSet[url]; dup {
			continue
		}
		keptSet[url] = struct{}{}
		final = append(final, url)
	}
	final = append(final, uploaded...)

	removedSet := make(map[string]struct{})
	removed := make([]string, 0)
	for _, url := range persisted {
		if _, ok := keptSet[url]; ok {
			continue
		}
		if _, dup := removedSet[url]; dup {
			continue
		}
		removedSet[url] = struct{}{}
		removed = append(removed, url)
	}

	return final, removed
}
