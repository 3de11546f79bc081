package brick

import "github.com/veandco/go-sdl2/sdl"

const defaultTextCacheSize = 24

// textEntry is a rendered text texture plus the dimensions needed to place
// it without querying the texture every frame.
type textEntry struct {
	texture *sdl.Texture
	w, h    int32
}

// textCache keeps rendered text textures keyed by content, font, and
// color. Titles and chrome labels repeat every frame; rendering glyphs
// through SDL_ttf each time is the classic SDL performance sink. Least
// recently used entries are evicted past the cap.
type textCache struct {
	entries map[string]textEntry
	order   []string
	maxSize int
}

func newTextCache(maxSize int) *textCache {
	return &textCache{
		entries: make(map[string]textEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *textCache) get(key string) (textEntry, bool) {
	entry, exists := c.entries[key]
	if exists {
		c.moveToEnd(key)
	}
	return entry, exists
}

func (c *textCache) set(key string, entry textEntry) {
	if old, exists := c.entries[key]; exists {
		if old.texture != entry.texture {
			old.texture.Destroy()
		}
		c.entries[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry
	c.order = append(c.order, key)
}

func (c *textCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, exists := c.entries[oldest]; exists {
		entry.texture.Destroy()
		delete(c.entries, oldest)
	}
}

func (c *textCache) destroy() {
	for _, entry := range c.entries {
		entry.texture.Destroy()
	}
	c.entries = make(map[string]textEntry)
	c.order = c.order[:0]
}
