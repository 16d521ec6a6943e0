package telegram

import "sync"

// languagePrefs keeps the per-chat display language. Presentation-only
// state: it is not persisted and defaults to English after a restart.
type languagePrefs struct {
	mu    sync.RWMutex
	langs map[int64]string
}

func newLanguagePrefs() *languagePrefs {
	return &languagePrefs{
		langs: make(map[int64]string),
	}
}

// Get returns the chat's language, defaulting to English.
func (p *languagePrefs) Get(chatID int64) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if lang, ok := p.langs[chatID]; ok {
		return lang
	}
	return langEnglish
}

// Toggle switches the chat between English and Bengali and returns the new
// language.
func (p *languagePrefs) Toggle(chatID int64) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := langBengali
	if p.langs[chatID] == langBengali {
		next = langEnglish
	}
	p.langs[chatID] = next
	return next
}
