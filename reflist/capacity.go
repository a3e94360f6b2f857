package reflist

// capacitySteps is the ascending table NextCapacity chooses from.
var capacitySteps = [...]int{
	4,
	8,
	16,
	32,
	48,
	64,
	80,
	96,
	128,
	192,
	256,
	1024,
	4096,
	16 * 1024,
}

// NextCapacity returns the smallest table step that can hold size elements,
// or size itself once it exceeds the largest step.
func NextCapacity(size int) int {
	for _, step := range capacitySteps {
		if size <= step {
			return step
		}
	}

	return size
}
