// Package prefs holds the two persisted display preferences. Each one is an
// independent two-valued toggle, written through to the local store on every
// change.
package prefs

import (
	"context"
	"log"
	"sync"

	"applydesk-engine/internal/events"
	"applydesk-engine/internal/store"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Language string

const (
	LangEN Language = "en"
	LangES Language = "es"
)

type Store struct {
	mu    sync.Mutex
	db    *store.DB
	hub   *events.Hub
	theme Theme
	lang  Language
}

func New(db *store.DB, hub *events.Hub, defTheme Theme, defLang Language) *Store {
	s := &Store{db: db, hub: hub, theme: ThemeDark, lang: LangEN}
	switch defTheme {
	case ThemeDark, ThemeLight:
		s.theme = defTheme
	}
	switch defLang {
	case LangEN, LangES:
		s.lang = defLang
	}
	return s
}

// Init reads both preferences from the store, once at startup. Absent or
// unrecognized values fall back to dark / en.
func (p *Store) Init(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v, ok, err := store.Get(ctx, p.db.Pool, store.KeyTheme); err != nil {
		log.Printf("[prefs] theme read failed: %v", err)
	} else if ok {
		switch Theme(v) {
		case ThemeDark, ThemeLight:
			p.theme = Theme(v)
		}
	}

	if v, ok, err := store.Get(ctx, p.db.Pool, store.KeyLanguage); err != nil {
		log.Printf("[prefs] language read failed: %v", err)
	} else if ok {
		switch Language(v) {
		case LangEN, LangES:
			p.lang = Language(v)
		}
	}
}

func (p *Store) Theme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

func (p *Store) Language() Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lang
}

// ToggleTheme flips the theme, persists it, and returns the new value.
func (p *Store) ToggleTheme(ctx context.Context) Theme {
	p.mu.Lock()
	if p.theme == ThemeDark {
		p.theme = ThemeLight
	} else {
		p.theme = ThemeDark
	}
	cur := p.theme
	p.mu.Unlock()

	p.persist(ctx, store.KeyTheme, string(cur))
	p.hub.Publish(events.MakeEvent("", events.TypePrefsChanged, 1,
		map[string]any{"theme": cur}))
	return cur
}

// ToggleLanguage flips between en and es, persists, returns the new value.
func (p *Store) ToggleLanguage(ctx context.Context) Language {
	p.mu.Lock()
	if p.lang == LangEN {
		p.lang = LangES
	} else {
		p.lang = LangEN
	}
	cur := p.lang
	p.mu.Unlock()

	p.persist(ctx, store.KeyLanguage, string(cur))
	p.hub.Publish(events.MakeEvent("", events.TypePrefsChanged, 1,
		map[string]any{"language": cur}))
	return cur
}

func (p *Store) persist(ctx context.Context, key, value string) {
	if err := store.Put(ctx, p.db.Pool, key, value); err != nil {
		log.Printf("[prefs] persist %s failed: %v", key, err)
	}
}
