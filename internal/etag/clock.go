package etag

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Clock выдает etag-и каталога. Счетчик Лампорта монотонно растет,
// поэтому каждый новый etag отличается от всех ранее выданных этим сервером.
type Clock struct {
	nodeID  string
	counter int64
	mu      sync.Mutex
}

// NewClock создает часы со случайным идентификатором узла
func NewClock() *Clock {
	return NewClockWithNodeID(uuid.NewString())
}

// NewClockWithNodeID создает часы с заданным идентификатором узла.
// Используется в тестах и при восстановлении состояния.
func NewClockWithNodeID(nodeID string) *Clock {
	return &Clock{nodeID: nodeID}
}

// Tick увеличивает счетчик и возвращает новое значение
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter++
	return c.counter
}

// Observe продвигает счетчик до seen, если он отстает.
// Вызывается после чтения максимального сохраненного значения при старте.
func (c *Clock) Observe(seen int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seen > c.counter {
		c.counter = seen
	}
}

func (c *Clock) Timestamp() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counter
}

func (c *Clock) NodeID() string {
	return c.nodeID
}

// Next возвращает следующее значение счетчика и соответствующий etag
func (c *Clock) Next() (int64, string) {
	seq := c.Tick()
	return seq, c.Format(seq)
}

// Format кодирует значение счетчика в etag вида "<node>-<seq base36>"
func (c *Clock) Format(seq int64) string {
	node := strings.ReplaceAll(c.nodeID, "-", "")
	if len(node) > 8 {
		node = node[:8]
	}
	return node + "-" + strconv.FormatInt(seq, 36)
}

// Parse извлекает значение счетчика из etag, выданного Format
func Parse(tag string) (int64, error) {
	idx := strings.LastIndexByte(tag, '-')
	if idx < 0 || idx == len(tag)-1 {
		return 0, fmt.Errorf("malformed etag %q", tag)
	}
	seq, err := strconv.ParseInt(tag[idx+1:], 36, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed etag %q: %w", tag, err)
	}
	return seq, nil
}
