package reshape

// Columns is the outcome of matching the configured column sets against an input header.
// Every list keeps the order of the configured set.
type Columns struct {
	Keep         []string
	MissingKeep  []string
	Phone        []string
	MissingPhone []string
}

// Resolve splits the keep and phone sets into the columns present in header and those absent
func Resolve(header, keep, phone []string) Columns {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}

	var cols Columns
	cols.Keep, cols.MissingKeep = partition(keep, present)
	cols.Phone, cols.MissingPhone = partition(phone, present)
	return cols
}

func partition(names []string, present map[string]struct{}) (available, missing []string) {
	available = make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := present[name]; ok {
			available = append(available, name)
		} else {
			missing = append(missing, name)
		}
	}
	return available, missing
}
