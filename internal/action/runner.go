package action

type entry struct {
	node   Node
	action Action
	step   step
	done   bool
}

// Runner advances running actions once per tick.
type Runner struct {
	entries []*entry
}

func NewRunner() *Runner {
	return &Runner{}
}

// Run schedules a on n. The action starts on the next Update, so a script
// added during an Update waits for the following tick.
func (r *Runner) Run(n Node, a Action) {
	r.entries = append(r.entries, &entry{node: n, action: a})
}

// Update advances every running action by dt seconds and drops the finished
// ones.
func (r *Runner) Update(dt float64) {
	count := len(r.entries)
	for i := 0; i < count && i < len(r.entries); i++ {
		e := r.entries[i]
		if e.done {
			continue
		}
		if e.step == nil {
			e.step = e.action.start(e.node)
		}
		if _, done := e.step.advance(dt); done {
			e.done = true
		}
	}

	kept := r.entries[:0]
	for _, e := range r.entries {
		if !e.done {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = kept
}

// RemoveActions cancels every action running on n. It may be called from
// inside a running action.
func (r *Runner) RemoveActions(n Node) {
	for _, e := range r.entries {
		if e.node == n {
			e.done = true
		}
	}
}

// HasActions reports whether n has any unfinished action.
func (r *Runner) HasActions(n Node) bool {
	for _, e := range r.entries {
		if e.node == n && !e.done {
			return true
		}
	}
	return false
}

// Len returns the number of unfinished actions.
func (r *Runner) Len() int {
	n := 0
	for _, e := range r.entries {
		if !e.done {
			n++
		}
	}
	return n
}

// Stop cancels everything.
func (r *Runner) Stop() {
	for _, e := range r.entries {
		e.done = true
	}
	r.entries = nil
}
