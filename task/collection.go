package task

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultDataFile is the data file path used when no configuration
// overrides it.
const DefaultDataFile = "data/data.json"

// Collection is the single source of truth for a set of tasks. It
// owns every Task, assigns IDs, keeps the search index and statistics
// caches coherent, and persists the whole collection to a JSON file
// after every mutation.
//
// Callers receive *Task references that stay valid until the task is
// removed; the search index is rebuilt, never patched, before any
// lookup that follows a removal.
type Collection struct {
	path   string
	tasks  []*Task
	nextID int

	index      *SearchIndex
	indexDirty bool

	cachedStats Stats
	statsDirty  bool

	loadWarnings []error

	saveMu      sync.Mutex
	savePending chan struct{}
	saveErr     error
}

// Open constructs a collection backed by the file at path and loads
// existing state. A missing file is not an error: the parent directory
// is created and the collection starts empty. A malformed file is
// reported through LoadWarnings and whatever parsed cleanly is kept;
// loading never fails hard on bad data.
func Open(path string) (*Collection, error) {
	if path == "" {
		path = DefaultDataFile
	}

	c := &Collection{
		path:       path,
		nextID:     1,
		index:      NewSearchIndex(),
		indexDirty: true,
		statsDirty: true,
	}
	c.load()
	return c, nil
}

// Path returns the backing data file path.
func (c *Collection) Path() string { return c.path }

// LoadWarnings returns non-fatal problems encountered while loading
// the data file, in the order they were found.
func (c *Collection) LoadWarnings() []error { return c.loadWarnings }

// Len returns the number of tasks.
func (c *Collection) Len() int { return len(c.tasks) }

// IsEmpty reports whether the collection has no tasks.
func (c *Collection) IsEmpty() bool { return len(c.tasks) == 0 }

// NextID returns the ID the next successful Add will assign.
func (c *Collection) NextID() int { return c.nextID }

// Tasks returns all tasks in collection (insertion) order.
func (c *Collection) Tasks() []*Task {
	out := make([]*Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// AddOptions configures optional fields of a new task. Zero values
// mean "default": status To-Do, priority Low, no description, no due
// date, no tags.
type AddOptions struct {
	Status      Status
	Priority    Priority
	Description string
	DueDate     *time.Time
	Tags        []string
}

// Add allocates the next ID, constructs a task, appends it, and
// persists. On a construction failure the ID counter is rolled back so
// the next successful Add reuses it; a persistence failure does NOT
// roll anything back and is reported as a *SaveError (the task exists
// in memory).
func (c *Collection) Add(name string, opts AddOptions) (*Task, error) {
	if opts.Status == 0 {
		opts.Status = StatusTodo
	}
	if opts.Priority == 0 {
		opts.Priority = PriorityLow
	}

	id := c.nextID
	c.nextID++

	t, err := New(id, name, opts.Status, opts.Priority)
	if err != nil {
		c.nextID--
		return nil, err
	}
	t.SetDescription(opts.Description)
	if opts.DueDate != nil {
		t.SetDueDate(*opts.DueDate)
	}
	for _, tag := range opts.Tags {
		if _, err := t.AddTag(tag); err != nil {
			c.nextID--
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
	}

	c.tasks = append(c.tasks, t)
	return t, c.persist()
}

// Remove deletes the task with the given ID. Remaining tasks keep
// their IDs; removed IDs are never reused.
func (c *Collection) Remove(id int) error {
	for i, t := range c.tasks {
		if t.ID() == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return c.persist()
		}
	}
	return notFoundError(id)
}

// RemoveAll clears the whole collection and reports how many tasks
// were removed. It fails with ErrEmptyCollection when there is nothing
// to remove. Confirmation is the caller's concern.
func (c *Collection) RemoveAll() (int, error) {
	if len(c.tasks) == 0 {
		return 0, ErrEmptyCollection
	}
	removed := len(c.tasks)
	c.tasks = nil
	return removed, c.persist()
}

// Update applies a new name, status, and priority to the task with the
// given ID. All three values are validated before any of them is
// applied, so a validation failure leaves the task untouched. The
// status setter carries the completedAt side effect.
func (c *Collection) Update(id int, name string, status Status, priority Priority) (*Task, error) {
	t, ok := c.Find(id)
	if !ok {
		return nil, notFoundError(id)
	}

	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if err := t.SetName(name); err != nil {
		return nil, err
	}
	if err := t.SetStatus(status); err != nil {
		return nil, err
	}
	if err := t.SetPriority(priority); err != nil {
		return nil, err
	}

	return t, c.persist()
}

// Complete marks the task as completed.
func (c *Collection) Complete(id int) (*Task, error) {
	t, ok := c.Find(id)
	if !ok {
		return nil, notFoundError(id)
	}
	t.MarkCompleted()
	return t, c.persist()
}

// AddTag adds a tag to a task. Adding a tag the task already has is a
// no-op and does not touch the data file. The second return reports
// whether the tag was actually added.
func (c *Collection) AddTag(id int, tag string) (*Task, bool, error) {
	t, ok := c.Find(id)
	if !ok {
		return nil, false, notFoundError(id)
	}
	added, err := t.AddTag(tag)
	if err != nil {
		return nil, false, err
	}
	if !added {
		return t, false, nil
	}
	return t, true, c.persist()
}

// RemoveTag removes a tag from a task.
func (c *Collection) RemoveTag(id int, tag string) (*Task, error) {
	t, ok := c.Find(id)
	if !ok {
		return nil, notFoundError(id)
	}
	if err := t.RemoveTag(tag); err != nil {
		return nil, err
	}
	return t, c.persist()
}

// SetDueDate sets a task's due date.
func (c *Collection) SetDueDate(id int, due time.Time) (*Task, error) {
	t, ok := c.Find(id)
	if !ok {
		return nil, notFoundError(id)
	}
	t.SetDueDate(due)
	return t, c.persist()
}

// Find returns the task with the given ID, or false when absent. It
// never fails; absence is an ordinary outcome.
func (c *Collection) Find(id int) (*Task, bool) {
	for _, t := range c.tasks {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

// Search is the naive baseline: a case-insensitive substring scan over
// name and description, returning matches in collection order.
func (c *Collection) Search(query string) []*Task {
	var results []*Task
	for _, t := range c.tasks {
		if t.Matches(query) {
			results = append(results, t)
		}
	}
	return results
}

// AdvancedSearch rebuilds the search index if it is stale and performs
// a prefix lookup across all indexed fields. Because the index stores
// every suffix, mid-string matches succeed ("ing" finds "Testing").
// Results are deduplicated and sorted by ID ascending. An empty query
// returns no results.
func (c *Collection) AdvancedSearch(query string) []*Task {
	if query == "" {
		return nil
	}
	c.rebuildIndex()
	return c.index.SearchPrefix(query)
}

// ByStatus returns tasks with the given status, in collection order.
func (c *Collection) ByStatus(status Status) []*Task {
	return c.filter(func(t *Task) bool { return t.Status() == status })
}

// ByPriority returns tasks with the given priority, in collection order.
func (c *Collection) ByPriority(priority Priority) []*Task {
	return c.filter(func(t *Task) bool { return t.Priority() == priority })
}

// ByTag returns tasks carrying the tag, in collection order.
func (c *Collection) ByTag(tag string) []*Task {
	return c.filter(func(t *Task) bool { return t.HasTag(tag) })
}

// Overdue returns tasks whose due date has passed and that are not
// completed, in collection order.
func (c *Collection) Overdue() []*Task {
	now := time.Now()
	return c.filter(func(t *Task) bool { return t.IsOverdue(now) })
}

// Statistics returns aggregate counts, recomputing only when a
// mutation has happened since the last call. The returned Stats is a
// value; later mutations never change it in place.
func (c *Collection) Statistics() Stats {
	if !c.statsDirty {
		return c.cachedStats
	}
	c.cachedStats = computeStats(c.tasks, time.Now())
	c.statsDirty = false
	return c.cachedStats
}

// SortedTasks returns all tasks in display order: priority descending,
// due date ascending (undated last), creation time ascending.
func (c *Collection) SortedTasks() []*Task {
	sorted := c.Tasks()
	SortForDisplay(sorted)
	return sorted
}

// Save persists the whole collection synchronously.
func (c *Collection) Save() error {
	data, err := encodeDocument(c.nextID, c.tasks)
	if err != nil {
		return err
	}
	return writeDataFile(c.path, data)
}

// SaveAsync persists the collection in the background. The tasks and
// the live nextId counter are snapshotted at the moment the save is
// queued, so the caller may keep mutating without affecting the write.
// If a save is already in flight the call is a no-op; call WaitForSave
// before process exit to guarantee durability.
func (c *Collection) SaveAsync() {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	if c.savePending != nil {
		return
	}

	snapshot := make([]*Task, len(c.tasks))
	for i, t := range c.tasks {
		snapshot[i] = t.Clone()
	}
	nextID := c.nextID
	path := c.path

	done := make(chan struct{})
	c.savePending = done

	go func() {
		defer close(done)
		var err error
		data, err := encodeDocument(nextID, snapshot)
		if err == nil {
			err = writeDataFile(path, data)
		}

		c.saveMu.Lock()
		c.saveErr = err
		c.savePending = nil
		c.saveMu.Unlock()
	}()
}

// WaitForSave blocks until any pending asynchronous save completes and
// returns its outcome.
func (c *Collection) WaitForSave() error {
	c.saveMu.Lock()
	done := c.savePending
	c.saveMu.Unlock()

	if done != nil {
		<-done
	}

	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	return c.saveErr
}

// persist marks the caches stale and writes the collection to disk.
// The in-memory mutation stands even when the write fails; the failure
// surfaces as a *SaveError so callers can report the distinction.
func (c *Collection) persist() error {
	c.indexDirty = true
	c.statsDirty = true

	if err := c.Save(); err != nil {
		return &SaveError{Path: c.path, Err: err}
	}
	return nil
}

func (c *Collection) rebuildIndex() {
	if !c.indexDirty {
		return
	}
	c.index.Clear()
	for _, t := range c.tasks {
		c.index.Add(t)
	}
	c.indexDirty = false
}

func (c *Collection) filter(keep func(*Task) bool) []*Task {
	var results []*Task
	for _, t := range c.tasks {
		if keep(t) {
			results = append(results, t)
		}
	}
	return results
}

func (c *Collection) load() {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(c.path), 0o755); mkErr != nil {
			c.loadWarnings = append(c.loadWarnings, fmt.Errorf("create data dir: %w", mkErr))
		}
		return
	}
	if err != nil {
		c.loadWarnings = append(c.loadWarnings, fmt.Errorf("read data file: %w", err))
		return
	}

	if err := validateDocument(data); err != nil {
		c.loadWarnings = append(c.loadWarnings, err)
	}

	nextID, tasks, warnings := decodeDocument(data)
	c.loadWarnings = append(c.loadWarnings, warnings...)
	c.tasks = tasks
	if nextID > 0 {
		c.nextID = nextID
	}
}

// writeDataFile writes the document via a temp file and atomic rename
// so a crash mid-write cannot leave a truncated data file.
func writeDataFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
