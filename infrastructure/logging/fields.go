package logging

import (
	"github.com/felixgeelhaar/bolt/v3"

	"github.com/SoSDylan/xVeinMiner/domain/item"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// CategoryID adds a tool category id field.
func CategoryID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("category", id)
	}
}

// MaterialName adds a material field.
func MaterialName(m item.Material) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("material", string(m))
	}
}

// TemplateCount adds a template count field.
func TemplateCount(count int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("templates", count)
	}
}

// CategoryCount adds a registered category count field.
func CategoryCount(count int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("categories", count)
	}
}

// ConfigPath adds a configuration file path field.
func ConfigPath(path string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("config", path)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
