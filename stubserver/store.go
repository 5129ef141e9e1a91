package stubserver

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is a schemaless server-side record addressable by _id.
type Record map[string]any

// ID returns the record's _id, or "" when absent.
func (r Record) ID() string {
	id, _ := r["_id"].(string)
	return id
}

func (r Record) clone() Record {
	copied := make(Record, len(r))
	for k, v := range r {
		copied[k] = v
	}
	return copied
}

// store holds every resource collection in memory, in insertion order.
type store struct {
	collections map[string][]Record
	lock        sync.RWMutex
}

func newStore() *store {
	return &store{collections: make(map[string][]Record)}
}

func (s *store) insert(resource string, record Record) Record {
	s.lock.Lock()
	defer s.lock.Unlock()

	record = record.clone()
	if record.ID() == "" {
		record["_id"] = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, ok := record["createdAt"]; !ok {
		record["createdAt"] = now
	}
	record["updatedAt"] = now

	s.collections[resource] = append(s.collections[resource], record)
	return record.clone()
}

func (s *store) get(resource, id string) (Record, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for _, record := range s.collections[resource] {
		if record.ID() == id {
			return record.clone(), true
		}
	}
	return nil, false
}

// update merges fields into an existing record.
func (s *store) update(resource, id string, fields Record) (Record, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, record := range s.collections[resource] {
		if record.ID() != id {
			continue
		}
		for k, v := range fields {
			if k == "_id" {
				continue
			}
			record[k] = v
		}
		record["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
		return record.clone(), true
	}
	return nil, false
}

func (s *store) remove(resource, id string) (Record, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	records := s.collections[resource]
	for i, record := range records {
		if record.ID() == id {
			s.collections[resource] = append(records[:i:i], records[i+1:]...)
			return record.clone(), true
		}
	}
	return nil, false
}

// listOptions mirrors the query parameters the data adapter sends.
type listOptions struct {
	page    int
	limit   int
	sort    string
	filters map[string]string
}

// list applies equality filters, a single sort field, and pagination, and
// returns the page plus the filtered total.
func (s *store) list(resource string, opts listOptions) ([]Record, int) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	filtered := make([]Record, 0)
	for _, record := range s.collections[resource] {
		if matchesFilters(record, opts.filters) {
			filtered = append(filtered, record.clone())
		}
	}

	if opts.sort != "" {
		field := strings.TrimPrefix(opts.sort, "-")
		descending := strings.HasPrefix(opts.sort, "-")
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i][field], filtered[j][field]
			// equal keys must compare false both ways so stability holds
			if descending {
				return compareValues(b, a)
			}
			return compareValues(a, b)
		})
	}

	total := len(filtered)

	page := opts.page
	if page < 1 {
		page = 1
	}
	limit := opts.limit
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []Record{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

func (s *store) all(resource string) []Record {
	s.lock.RLock()
	defer s.lock.RUnlock()

	records := make([]Record, 0, len(s.collections[resource]))
	for _, record := range s.collections[resource] {
		records = append(records, record.clone())
	}
	return records
}

func (s *store) count(resource string, filters map[string]string) int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	count := 0
	for _, record := range s.collections[resource] {
		if matchesFilters(record, filters) {
			count++
		}
	}
	return count
}

func matchesFilters(record Record, filters map[string]string) bool {
	for field, want := range filters {
		if stringValue(record[field]) != want {
			return false
		}
	}
	return true
}

func stringValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		if value {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case map[string]any:
		// populated reference, compare by its id
		return stringValue(value["_id"])
	case nil:
		return ""
	default:
		return ""
	}
}

func compareValues(a, b any) bool {
	return stringValue(a) < stringValue(b)
}
