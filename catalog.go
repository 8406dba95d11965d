package roadlocale

import (
	"fmt"
	"sync"
)

// Message is a single translatable entry. Plural holds alternate texts per
// plural category; Value is used when no alternate matches. A non-empty
// Context qualifies the key so the same key can carry different texts in
// different contexts.
type Message struct {
	Key         string
	Value       string
	Plural      map[PluralCategory]string
	Context     string
	Description string
}

// qualifiedKey is the identity of a message within a catalog.
func (m Message) qualifiedKey() string {
	if m.Context != "" {
		return m.Context + ":" + m.Key
	}
	return m.Key
}

// Catalog holds the messages of one locale, keyed by qualified key.
// Adding a message with an existing qualified key overwrites the previous
// one. All operations are safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]Message
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		messages: make(map[string]Message),
	}
}

// Add inserts a message, replacing any existing message with the same
// qualified key.
func (c *Catalog) Add(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(msg)
}

// AddAll inserts one simple message per map entry, with no context and no
// plural forms.
func (c *Catalog) AddAll(messages map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, value := range messages {
		c.add(Message{Key: key, Value: value})
	}
}

func (c *Catalog) add(msg Message) {
	c.messages[msg.qualifiedKey()] = msg
}

// Get looks up a message. With a non-empty context the context-qualified key
// is tried first; a context-free message with the bare key is still visible
// when no context-specific override exists.
func (c *Catalog) Get(key, context string) (Message, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if context != "" {
		if msg, ok := c.messages[context+":"+key]; ok {
			return msg, true
		}
	}
	msg, ok := c.messages[key]
	return msg, ok
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Import adds messages from a generic key to value mapping, as produced by
// unmarshalling a translation file. A plain string value becomes a simple
// message; a map value may carry "value", "plural", "context", and
// "description" fields, with "value" defaulting to the "one" plural text.
// It returns the number of entries processed. A value of any other shape
// aborts the import with ErrMalformedMessages and leaves the catalog
// unchanged.
func (c *Catalog) Import(data map[string]any) (int, error) {
	parsed := make([]Message, 0, len(data))

	for key, raw := range data {
		switch value := raw.(type) {
		case string:
			parsed = append(parsed, Message{Key: key, Value: value})
		case map[string]any:
			msg, err := messageFromMap(key, value)
			if err != nil {
				return 0, err
			}
			parsed = append(parsed, msg)
		default:
			return 0, fmt.Errorf("%w: key %q has unsupported value type %T", ErrMalformedMessages, key, raw)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, msg := range parsed {
		c.add(msg)
	}

	return len(parsed), nil
}

// Export returns the catalog as a generic mapping, the inverse of Import.
// Messages with plural forms serialize as {"value": ..., "plural": {...}},
// all others as the bare string.
func (c *Catalog) Export() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]any, len(c.messages))
	for key, msg := range c.messages {
		if len(msg.Plural) == 0 {
			result[key] = msg.Value
			continue
		}
		plural := make(map[string]string, len(msg.Plural))
		for category, text := range msg.Plural {
			plural[category.String()] = text
		}
		result[key] = map[string]any{
			"value":  msg.Value,
			"plural": plural,
		}
	}
	return result
}

func messageFromMap(key string, fields map[string]any) (Message, error) {
	msg := Message{Key: key}

	if raw, ok := fields["value"]; ok {
		value, ok := raw.(string)
		if !ok {
			return Message{}, fmt.Errorf("%w: key %q: \"value\" must be a string, got %T", ErrMalformedMessages, key, raw)
		}
		msg.Value = value
	}
	if raw, ok := fields["context"]; ok {
		context, ok := raw.(string)
		if !ok {
			return Message{}, fmt.Errorf("%w: key %q: \"context\" must be a string, got %T", ErrMalformedMessages, key, raw)
		}
		msg.Context = context
	}
	if raw, ok := fields["description"]; ok {
		description, ok := raw.(string)
		if !ok {
			return Message{}, fmt.Errorf("%w: key %q: \"description\" must be a string, got %T", ErrMalformedMessages, key, raw)
		}
		msg.Description = description
	}

	if raw, ok := fields["plural"]; ok {
		plural, err := pluralFromValue(key, raw)
		if err != nil {
			return Message{}, err
		}
		msg.Plural = plural
	}

	if msg.Value == "" {
		msg.Value = msg.Plural[PluralOne]
	}

	return msg, nil
}

func pluralFromValue(key string, raw any) (map[PluralCategory]string, error) {
	texts := make(map[string]string)

	switch forms := raw.(type) {
	case map[string]string:
		texts = forms
	case map[string]any:
		for name, text := range forms {
			s, ok := text.(string)
			if !ok {
				return nil, fmt.Errorf("%w: key %q: plural form %q must be a string, got %T", ErrMalformedMessages, key, name, text)
			}
			texts[name] = s
		}
	default:
		return nil, fmt.Errorf("%w: key %q: \"plural\" must be a mapping, got %T", ErrMalformedMessages, key, raw)
	}

	plural := make(map[PluralCategory]string, len(texts))
	for name, text := range texts {
		category, ok := ParsePluralCategory(name)
		if !ok {
			return nil, fmt.Errorf("%w: key %q: unknown plural category %q", ErrMalformedMessages, key, name)
		}
		plural[category] = text
	}
	return plural, nil
}
