package entity

// UnknownCategory is the name reported for a class index outside the category map
const UnknownCategory = "Unknown Category"

var categoryNames = map[int]string{
	0: "World",
	1: "Sports",
	2: "Business",
	3: "Sci/Tech",
}

// CategoryName maps a predicted class index to its display name
func CategoryName(index int) string {
	if name, ok := categoryNames[index]; ok {
		return name
	}
	return UnknownCategory
}

// Categories returns a copy of the category map
func Categories() map[int]string {
	out := make(map[int]string, len(categoryNames))
	for k, v := range categoryNames {
		out[k] = v
	}
	return out
}
