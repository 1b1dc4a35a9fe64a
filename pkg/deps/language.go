package deps

// Language groups the lockfile readers of one ecosystem.
type Language struct {
	Name    string
	Readers []LockfileReader
}

// Types lists the lockfile types handled by the language.
func (l *Language) Types() []string {
	types := make([]string, len(l.Readers))
	for i, r := range l.Readers {
		types[i] = r.Type()
	}
	return types
}

// AllReaders flattens the readers of langs, preserving order.
func AllReaders(langs ...*Language) []LockfileReader {
	var out []LockfileReader
	for _, l := range langs {
		out = append(out, l.Readers...)
	}
	return out
}
