package main

// miscellaneous utility functions

func sliceContainsString(haystack []string, needle string) bool {
	if len(haystack) == 0 {
		return false
	}

	for _, item := range haystack {
		if item == needle {
			return true
		}
	}

	return false
}
