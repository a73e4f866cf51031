package themecraft

// MaxHistory is the number of entries a slot's log keeps before evicting the oldest.
const MaxHistory = 50

// historyLog is a linear undo/redo log. cursor indexes the current entry.
type historyLog struct {
	entries []RGB
	cursor  int
}

// History keeps an independent undo/redo log per slot.
// Logs are created lazily and live until Reset.
type History struct {
	logs map[Slot]*historyLog
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{logs: make(map[Slot]*historyLog)}
}

// Open creates the slot's log with current as its first entry.
// It does nothing if the log already exists.
func (h *History) Open(slot Slot, current RGB) {
	if _, ok := h.logs[slot]; ok {
		return
	}
	h.logs[slot] = &historyLog{entries: []RGB{current}}
}

// Commit appends value as the latest entry, discarding any redo tail.
// A value equal to the current entry is not recorded again.
func (h *History) Commit(slot Slot, value RGB) {
	log, ok := h.logs[slot]
	if !ok {
		log = &historyLog{}
		h.logs[slot] = log
	}

	if len(log.entries) > 0 {
		if log.entries[log.cursor] == value {
			return
		}
		log.entries = log.entries[:log.cursor+1]
	}

	log.entries = append(log.entries, value)
	if len(log.entries) > MaxHistory {
		drop := len(log.entries) - MaxHistory
		log.entries = append(log.entries[:0], log.entries[drop:]...)
	}
	log.cursor = len(log.entries) - 1
}

// Undo moves the slot's cursor back one entry and returns the entry there.
// It reports false, with the current entry, when there is nothing to undo.
func (h *History) Undo(slot Slot) (RGB, bool) {
	log, ok := h.logs[slot]
	if !ok || len(log.entries) == 0 {
		return RGB{}, false
	}
	if log.cursor == 0 {
		return log.entries[0], false
	}
	log.cursor--
	return log.entries[log.cursor], true
}

// Redo moves the slot's cursor forward one entry and returns the entry there.
// It reports false, with the current entry, when there is nothing to redo.
func (h *History) Redo(slot Slot) (RGB, bool) {
	log, ok := h.logs[slot]
	if !ok || len(log.entries) == 0 {
		return RGB{}, false
	}
	if log.cursor == len(log.entries)-1 {
		return log.entries[log.cursor], false
	}
	log.cursor++
	return log.entries[log.cursor], true
}

// CanUndo reports whether Undo would move the slot's cursor.
func (h *History) CanUndo(slot Slot) bool {
	log, ok := h.logs[slot]
	return ok && log.cursor > 0
}

// CanRedo reports whether Redo would move the slot's cursor.
func (h *History) CanRedo(slot Slot) bool {
	log, ok := h.logs[slot]
	return ok && log.cursor < len(log.entries)-1
}

// Len returns the number of entries in the slot's log.
func (h *History) Len(slot Slot) int {
	if log, ok := h.logs[slot]; ok {
		return len(log.entries)
	}
	return 0
}

// Current returns the entry under the slot's cursor.
func (h *History) Current(slot Slot) (RGB, bool) {
	log, ok := h.logs[slot]
	if !ok || len(log.entries) == 0 {
		return RGB{}, false
	}
	return log.entries[log.cursor], true
}

// Reset discards every log.
func (h *History) Reset() {
	h.logs = make(map[Slot]*historyLog)
}
