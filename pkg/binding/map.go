package binding

// Map is an Object backed by nested map[string]any values. Writes create
// missing intermediate maps; reads fail on missing segments.
type Map map[string]any

// GetPath walks path and returns the value at its end.
func (m Map) GetPath(path Path) (any, error) {
	if len(path) == 0 {
		return nil, &PathError{Op: "get", Path: path, Err: ErrEmptyPath}
	}
	var current any = map[string]any(m)
	for _, segment := range path {
		container, ok := asMap(current)
		if !ok {
			return nil, &PathError{Op: "get", Path: path, Segment: segment, Err: ErrNotContainer}
		}
		next, ok := container[segment]
		if !ok {
			return nil, &PathError{Op: "get", Path: path, Segment: segment, Err: ErrPathNotFound}
		}
		current = next
	}
	return current, nil
}

// SetPath stores value at path, creating intermediate maps as needed.
func (m Map) SetPath(path Path, value any) error {
	if len(path) == 0 {
		return &PathError{Op: "set", Path: path, Err: ErrEmptyPath}
	}
	container := map[string]any(m)
	for _, segment := range path[:len(path)-1] {
		next, ok := container[segment]
		if !ok || next == nil {
			created := map[string]any{}
			container[segment] = created
			container = created
			continue
		}
		nested, ok := asMap(next)
		if !ok {
			return &PathError{Op: "set", Path: path, Segment: segment, Err: ErrNotContainer}
		}
		container = nested
	}
	container[path[len(path)-1]] = value
	return nil
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case Map:
		return map[string]any(v), true
	default:
		return nil, false
	}
}
